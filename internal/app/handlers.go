package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazyscratch/internal/app/screen"
	"github.com/chmouel/lazyscratch/internal/app/state"
)

const (
	keyCtrlC    = "ctrl+c"
	keyCtrlS    = "ctrl+s"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
)

// handleKeyMsg routes keys to the open modal, the editor or the explorer.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screens.IsActive() {
		cmd := m.screens.HandleKey(msg)
		m.refresh()
		return m, cmd
	}

	switch msg.String() {
	case keyCtrlC:
		return m, m.requestQuit()
	case keyCtrlS:
		return m, m.saveFile()
	}

	if m.view.FocusedPane == state.PaneEditor {
		return m, m.handleEditorKey(msg)
	}
	return m, m.handleExplorerKey(msg)
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyEsc, keyTab, keyShiftTab:
		return m.focusPane(state.PaneExplorer)
	}
	return m.updateEditor(msg)
}

func (m *Model) handleExplorerKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		m.explorer.move(1)
	case "k", "up":
		m.explorer.move(-1)
	case "g", "home":
		m.explorer.top()
	case "G", "end":
		m.explorer.bottom()
	case "ctrl+d", "pgdown":
		m.explorer.move(maxInt(1, m.explorerPageSize()/2))
	case "ctrl+u", "pgup":
		m.explorer.move(-maxInt(1, m.explorerPageSize()/2))
	case keyEnter, "o":
		return m.activateRow()
	case " ":
		m.toggleRow()
	case "a":
		return m.promptCreateFile(m.explorer.targetFolder())
	case "A":
		return m.promptCreateFolder(m.explorer.targetFolder())
	case "N":
		return m.promptCreateFolder("")
	case "d", "x":
		return m.deleteRow()
	case keyTab, keyShiftTab:
		return m.focusPane(m.view.FocusedPane.Next())
	case "?":
		m.showHelp()
	case "q":
		return m.requestQuit()
	case keyEsc:
		m.toasts.dismiss()
	}
	return nil
}

// activateRow opens the file under the cursor, or toggles a folder.
func (m *Model) activateRow() tea.Cmd {
	row, ok := m.explorer.current()
	if !ok {
		return nil
	}
	if row.folder {
		m.toggleRow()
		return nil
	}
	return m.openFile(row.path)
}

func (m *Model) toggleRow() {
	row, ok := m.explorer.current()
	if !ok || !row.folder {
		return
	}
	m.explorer.toggle(row.path)
	m.refresh()
}

func (m *Model) deleteRow() tea.Cmd {
	row, ok := m.explorer.current()
	if !ok || row.folder {
		return nil
	}
	return m.deleteFile(row.path)
}

// focusPane moves focus. The editor only takes focus when a file is open.
func (m *Model) focusPane(p state.Pane) tea.Cmd {
	if p == state.PaneEditor && !m.hasSelection() {
		return nil
	}
	m.view.FocusedPane = p
	if p == state.PaneEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

func (m *Model) showHelp() {
	m.screens.Push(screen.NewHelpScreen(m.view.WindowWidth, m.view.WindowHeight, m.theme, m.config.IconsEnabled()))
}
