package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazyscratch/internal/config"
)

func newTestModel(t *testing.T, folders ...string) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	if len(folders) > 0 {
		cfg.DefaultFolders = folders
	}
	m := NewModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	t.Cleanup(m.Close)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var last tea.Cmd
	for _, msg := range msgs {
		_, last = m.Update(msg)
	}
	return last
}

// createFile drives the add-file prompt for the folder under the cursor.
func createFile(t *testing.T, m *Model, name string) {
	t.Helper()
	press(m, keyRunes("a"))
	require.True(t, m.screens.IsActive(), "expected name prompt")
	press(m, keyRunes(name), tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.screens.IsActive(), "expected prompt to close")
}
