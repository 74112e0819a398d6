package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazyscratch/internal/app/screen"
	"github.com/chmouel/lazyscratch/internal/app/state"
	"github.com/chmouel/lazyscratch/internal/filetree"
	"github.com/chmouel/lazyscratch/internal/models"
	"github.com/chmouel/lazyscratch/internal/utils"
)

// promptCreateFile asks for a file name and creates it inside folder.
func (m *Model) promptCreateFile(folder string) tea.Cmd {
	if folder == "" {
		return nil
	}
	input := screen.NewInputScreen("New file", utils.RandomName()+".md", m.theme)
	input.SetLocation(folder)
	input.SetValidation(func(value string) string {
		if strings.Contains(value, filetree.Separator) {
			return "File names cannot contain /, use A to add folders"
		}
		return ""
	})
	input.OnSubmit = func(value string) tea.Cmd {
		n, ok := m.workspace.CreateFile(folder, value)
		if ok && !n.IsError() {
			m.explorer.reveal(m.workspace.CurrentFile())
			m.refresh()
			m.explorer.selectPath(m.workspace.CurrentFile())
			return tea.Batch(m.notify(n, ok), m.focusPane(state.PaneEditor))
		}
		return m.notify(n, ok)
	}
	m.screens.Push(input)
	return textinput.Blink
}

// promptCreateFolder asks for a folder name and creates it below parent.
// The name may contain / to create nested folders in one go.
func (m *Model) promptCreateFolder(parent string) tea.Cmd {
	title := "New folder"
	if parent == "" {
		title = "New top-level folder"
	}
	input := screen.NewInputScreen(title, utils.RandomName(), m.theme)
	input.SetLocation(parent)
	input.OnSubmit = func(value string) tea.Cmd {
		n, ok := m.workspace.CreateFolder(parent, value)
		if ok && !n.IsError() {
			path := filetree.Join(parent, value)
			m.explorer.reveal(path)
			m.refresh()
			m.explorer.selectPath(path)
		}
		return m.notify(n, ok)
	}
	m.screens.Push(input)
	return textinput.Blink
}

// openFile loads path into the editor and focuses it. Reopening the file
// already in the editor keeps the unsaved buffer.
func (m *Model) openFile(path string) tea.Cmd {
	if path != m.workspace.CurrentFile() {
		if err := m.workspace.OpenFile(filetree.Dir(path), filetree.Base(path)); err != nil {
			m.debugf("open %s: %v", path, err)
			return nil
		}
		m.refresh()
	}
	return m.focusPane(state.PaneEditor)
}

func (m *Model) deleteFile(path string) tea.Cmd {
	n := m.workspace.DeleteFile(filetree.Dir(path), filetree.Base(path))
	m.refresh()
	return m.notify(n, true)
}

func (m *Model) saveFile() tea.Cmd {
	n, ok := m.workspace.SaveFile()
	m.refresh()
	return m.notify(n, ok)
}

// requestQuit exits, asking first when the buffer holds unsaved edits.
func (m *Model) requestQuit() tea.Cmd {
	if !m.workspace.Dirty() {
		return m.quit()
	}
	confirm := screen.NewConfirmScreen(
		fmt.Sprintf("%s has unsaved changes.\nQuit and discard them?", m.workspace.CurrentFile()),
		m.theme,
	)
	confirm.OnConfirm = m.quit
	m.screens.Push(confirm)
	return nil
}

// notify shows n as a toast when ok is set.
func (m *Model) notify(n models.Notification, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	m.debugf("notification %s: %s", n.Title, n.Description)
	return m.toasts.push(n)
}

// refresh rebuilds derived state after the workspace changed.
func (m *Model) refresh() {
	m.explorer.rebuild(m.workspace.Tree())
	m.syncEditor()
}
