package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazyscratch/internal/app/state"
)

// renderHeader renders the application header.
func (m *Model) renderHeader(layout layoutDims) string {
	headerStyle := lipgloss.NewStyle().
		Background(m.theme.AccentDim).
		Foreground(m.theme.TextFg).
		Bold(true).
		Width(layout.width).
		Padding(0, 2).Align(lipgloss.Center)

	folders, files := m.workspace.Tree().Stats()
	content := fmt.Sprintf("LazyScratch  •  %s  •  %s",
		plural(folders, "folder"), plural(files, "file"))
	return headerStyle.Render(content)
}

// renderFooter renders the application footer with context-aware hints.
func (m *Model) renderFooter(layout layoutDims) string {
	footerStyle := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Background(m.theme.BorderDim).
		Padding(0, 1)

	var hints []string
	if m.view.FocusedPane == state.PaneEditor {
		hints = []string{
			m.renderKeyHint("ctrl+s", "Save"),
			m.renderKeyHint("Esc", "Explorer"),
		}
	} else {
		hints = []string{m.renderKeyHint("j/k", "Navigate")}
		if row, ok := m.explorer.current(); ok {
			if row.folder {
				hints = append(hints,
					m.renderKeyHint("a", "Add File"),
					m.renderKeyHint("A", "Add Folder"),
					m.renderKeyHint("Space", "Toggle"),
				)
			} else {
				hints = append(hints,
					m.renderKeyHint("Enter", "Open"),
					m.renderKeyHint("d", "Delete"),
				)
			}
		}
		hints = append(hints, m.renderKeyHint("N", "New Folder"))
		if m.hasSelection() {
			hints = append(hints, m.renderKeyHint("ctrl+s", "Save"))
		}
		hints = append(hints,
			m.renderKeyHint("q", "Quit"),
			m.renderKeyHint("?", "Help"),
		)
	}

	return footerStyle.Width(layout.width).MaxHeight(1).Render(strings.Join(hints, "  "))
}

// renderKeyHint renders a single key hint with pill styling.
func (m *Model) renderKeyHint(key, label string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	return fmt.Sprintf("%s %s", keyStyle.Render(key), labelStyle.Render(label))
}

// renderPaneTitle renders a pane title with focus indicators.
func (m *Model) renderPaneTitle(index int, title string, focused bool, width int) string {
	numStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	if focused {
		numStyle = numStyle.Foreground(m.theme.Accent).Bold(true)
		titleStyle = titleStyle.Foreground(m.theme.TextFg).Bold(true)
	}
	num := numStyle.Render(fmt.Sprintf("[%d]", index))
	return lipgloss.NewStyle().Width(width).MaxHeight(1).Render(num + " " + titleStyle.Render(title))
}

// paneStyle returns a pane style with focus indication.
func (m *Model) paneStyle(focused bool) lipgloss.Style {
	borderColor := m.theme.BorderDim
	borderStyle := lipgloss.NormalBorder()
	if focused {
		borderColor = m.theme.Accent
		borderStyle = lipgloss.RoundedBorder()
	}
	return lipgloss.NewStyle().
		Border(borderStyle).
		BorderForeground(borderColor).
		Padding(0, 1)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
