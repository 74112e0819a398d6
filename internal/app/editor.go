package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazyscratch/internal/app/state"
	"github.com/chmouel/lazyscratch/internal/models"
)

const editorPlaceholder = "Select a file to start editing."

// editorMaxLines is the line cap built into bubbles textarea. Lines pasted
// past it are dropped by the widget.
const editorMaxLines = 10000

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Empty file"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Blur()
	return ta
}

func (m *Model) applyEditorTheme() {
	focused, blurred := textarea.DefaultStyles()

	focused.Text = lipgloss.NewStyle().Foreground(m.theme.TextFg)
	focused.CursorLine = lipgloss.NewStyle().Foreground(m.theme.TextFg).Background(m.theme.AccentDim)
	focused.LineNumber = lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	focused.CursorLineNumber = lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	focused.Placeholder = lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	focused.EndOfBuffer = lipgloss.NewStyle().Foreground(m.theme.BorderDim)

	blurred.Text = lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	blurred.CursorLine = lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	blurred.LineNumber = lipgloss.NewStyle().Foreground(m.theme.BorderDim)
	blurred.CursorLineNumber = lipgloss.NewStyle().Foreground(m.theme.BorderDim)
	blurred.Placeholder = lipgloss.NewStyle().Foreground(m.theme.BorderDim)
	blurred.EndOfBuffer = lipgloss.NewStyle().Foreground(m.theme.BorderDim)

	m.editor.FocusedStyle = focused
	m.editor.BlurredStyle = blurred
}

// syncEditor reloads the textarea when the selection changed underneath it.
func (m *Model) syncEditor() {
	current := m.workspace.CurrentFile()
	if current == m.editorPath {
		return
	}
	m.editorPath = current
	m.editor.Reset()
	if current != "" {
		m.editor.SetValue(m.workspace.CurrentContent())
		for m.editor.Line() > 0 {
			m.editor.CursorUp()
		}
		m.editor.CursorStart()
		return
	}
	m.focusPane(state.PaneExplorer)
}

// updateEditor forwards a key to the textarea and mirrors the result into
// the workspace buffer. A paste that hits the line cap is reported.
func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	if !m.hasSelection() {
		return nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if value := m.editor.Value(); value != m.workspace.CurrentContent() {
		m.workspace.SetBuffer(value)
	}
	if msg.Paste && m.editor.LineCount() >= editorMaxLines {
		m.debugf("paste into %s truncated at %d lines", m.workspace.CurrentFile(), editorMaxLines)
		warning := m.appNotification("Error",
			fmt.Sprintf("Files are limited to %d lines, the rest of the paste was dropped.", editorMaxLines),
			models.SeverityError)
		return tea.Batch(cmd, m.notify(warning, true))
	}
	return cmd
}
