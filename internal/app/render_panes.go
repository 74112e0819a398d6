package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/chmouel/lazyscratch/internal/app/screen"
	"github.com/chmouel/lazyscratch/internal/app/state"
)

// renderBody renders the explorer and editor panes side by side.
func (m *Model) renderBody(layout layoutDims) string {
	left := m.renderExplorerPane(layout)
	right := m.renderEditorPane(layout)
	gap := strings.Repeat(" ", layout.gapX)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}

func (m *Model) renderPane(focused bool, width, height int, content string) string {
	style := m.paneStyle(focused)
	return style.
		Width(maxInt(1, width-style.GetHorizontalBorderSize())).
		Height(maxInt(1, height-style.GetVerticalBorderSize())).
		MaxHeight(height).
		Render(content)
}

// renderExplorerPane renders the folder and file tree.
func (m *Model) renderExplorerPane(layout layoutDims) string {
	focused := m.view.FocusedPane == state.PaneExplorer
	title := m.renderPaneTitle(1, state.PaneExplorer.String(), focused, layout.explorerInnerWidth)

	var body string
	if len(m.explorer.rows) == 0 {
		body = lipgloss.NewStyle().
			Foreground(m.theme.MutedFg).
			Width(layout.explorerInnerWidth).
			Render("No folders yet. Press N to add one.")
	} else {
		start, end := m.explorer.scroll(maxInt(1, layout.innerHeight-1))
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			lines = append(lines, m.renderExplorerRow(m.explorer.rows[i], i == m.explorer.cursor, focused, layout.explorerInnerWidth))
		}
		body = strings.Join(lines, "\n")
	}

	return m.renderPane(focused, layout.explorerWidth, layout.bodyHeight, lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// renderExplorerRow renders a single folder or file entry.
func (m *Model) renderExplorerRow(row explorerRow, selected, focused bool, width int) string {
	showIcons := m.config.IconsEnabled()
	open := !row.folder && row.path == m.workspace.CurrentFile()

	var b strings.Builder
	b.WriteString(row.indent())
	if row.folder {
		b.WriteString(screen.DisclosureIndicator(row.collapsed, showIcons))
		b.WriteString(" ")
	} else {
		b.WriteString("  ")
	}
	if showIcons {
		b.WriteString(iconWithSpace(m.icons.lookup(row.name, row.folder)))
	}
	b.WriteString(row.name)
	if row.folder && row.collapsed && row.children > 0 {
		b.WriteString(" (")
		b.WriteString(plural(row.children, "item"))
		b.WriteString(")")
	}
	if open && m.workspace.Dirty() {
		b.WriteString(" ●")
	}

	text := truncate.StringWithTail(b.String(), uint(maxInt(width, 1)), "…") // #nosec G115 -- width is clamped to at least 1

	style := lipgloss.NewStyle().Width(width)
	switch {
	case selected && focused:
		style = style.Foreground(m.theme.AccentFg).Background(m.theme.Accent).Bold(true)
	case selected:
		style = style.Foreground(m.theme.TextFg).Background(m.theme.BorderDim)
	case open && m.workspace.Dirty():
		style = style.Foreground(m.theme.Yellow).Bold(true)
	case open:
		style = style.Foreground(m.theme.Accent).Bold(true)
	case row.folder:
		style = style.Foreground(m.theme.Cyan)
	default:
		style = style.Foreground(m.theme.TextFg)
	}
	return style.Render(text)
}

// renderEditorPane renders the path line and the textarea, or a placeholder
// when no file is open.
func (m *Model) renderEditorPane(layout layoutDims) string {
	focused := m.view.FocusedPane == state.PaneEditor
	title := m.renderPaneTitle(2, state.PaneEditor.String(), focused, layout.editorInnerWidth)

	if !m.hasSelection() {
		placeholder := lipgloss.NewStyle().
			Foreground(m.theme.MutedFg).
			Italic(true).
			Width(layout.editorInnerWidth).
			Height(maxInt(1, layout.innerHeight-1)).
			Align(lipgloss.Center, lipgloss.Center).
			Render(editorPlaceholder)
		return m.renderPane(focused, layout.editorWidth, layout.bodyHeight, lipgloss.JoinVertical(lipgloss.Left, title, placeholder))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.renderPathLine(layout.editorInnerWidth), m.editor.View())
	return m.renderPane(focused, layout.editorWidth, layout.bodyHeight, content)
}

// renderPathLine renders the read-only path of the open file.
func (m *Model) renderPathLine(width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	pathStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	line := labelStyle.Render("Path: ") + pathStyle.Render(m.workspace.CurrentFile())
	if m.workspace.Dirty() {
		line += lipgloss.NewStyle().Foreground(m.theme.WarnFg).Italic(true).Render("  [modified]")
	}
	return lipgloss.NewStyle().Width(width).MaxHeight(1).Render(line)
}
