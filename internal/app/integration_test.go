package app

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/chmouel/lazyscratch/internal/config"
)

func sendKeys(tm *teatest.TestModel, msgs ...tea.Msg) {
	for _, msg := range msgs {
		tm.Send(msg)
	}
	time.Sleep(50 * time.Millisecond)
}

func finalModel(t *testing.T, tm *teatest.TestModel) *Model {
	t.Helper()
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
	m, ok := tm.FinalModel(t).(*Model)
	if !ok {
		t.Fatal("Final model is not *Model type")
	}
	return m
}

// TestCreateEditSaveFlow drives a full session: add a folder, add a file,
// type into it, save and quit.
func TestCreateEditSaveFlow(t *testing.T) {
	tm := teatest.NewTestModel(
		t,
		NewModel(config.DefaultConfig()),
		teatest.WithInitialTermSize(120, 40),
	)
	time.Sleep(100 * time.Millisecond)

	sendKeys(tm, keyRunes("N"), keyRunes("docs"), tea.KeyMsg{Type: tea.KeyEnter})
	sendKeys(tm, keyRunes("a"), keyRunes("a.txt"), tea.KeyMsg{Type: tea.KeyEnter})
	sendKeys(tm, keyRunes("hello"))
	sendKeys(tm, tea.KeyMsg{Type: tea.KeyCtrlS})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("File saved!"))
		},
		teatest.WithCheckInterval(100*time.Millisecond),
		teatest.WithDuration(2*time.Second),
	)

	sendKeys(tm, tea.KeyMsg{Type: tea.KeyEsc}, keyRunes("q"))

	m := finalModel(t, tm)
	if !m.quitting {
		t.Error("Model should be marked as quitting after 'q' key")
	}
	content, err := m.workspace.Tree().ReadFile("docs/a.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if content != "hello" {
		t.Errorf("expected saved content %q, got %q", "hello", content)
	}
}

// TestQuitDiscardingChanges confirms the unsaved changes prompt.
func TestQuitDiscardingChanges(t *testing.T) {
	tm := teatest.NewTestModel(
		t,
		NewModel(config.DefaultConfig()),
		teatest.WithInitialTermSize(120, 40),
	)
	time.Sleep(100 * time.Millisecond)

	sendKeys(tm, keyRunes("a"), keyRunes("notes.md"), tea.KeyMsg{Type: tea.KeyEnter})
	sendKeys(tm, keyRunes("draft"))
	sendKeys(tm, tea.KeyMsg{Type: tea.KeyCtrlC})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("unsaved changes"))
		},
		teatest.WithCheckInterval(100*time.Millisecond),
		teatest.WithDuration(2*time.Second),
	)

	sendKeys(tm, keyRunes("y"))

	m := finalModel(t, tm)
	if !m.quitting {
		t.Error("Model should be quitting after confirming")
	}
	content, err := m.workspace.Tree().ReadFile("default/notes.md")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if content != "" {
		t.Errorf("unsaved edits should be discarded, got %q", content)
	}
}

// TestHelpScreenFlow opens and closes the help overlay.
func TestHelpScreenFlow(t *testing.T) {
	tm := teatest.NewTestModel(
		t,
		NewModel(config.DefaultConfig()),
		teatest.WithInitialTermSize(120, 40),
	)
	time.Sleep(100 * time.Millisecond)

	sendKeys(tm, keyRunes("?"))
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Help"))
		},
		teatest.WithCheckInterval(100*time.Millisecond),
		teatest.WithDuration(2*time.Second),
	)

	sendKeys(tm, keyRunes("q"))
	sendKeys(tm, keyRunes("q"))

	m := finalModel(t, tm)
	if m.screens.IsActive() {
		t.Error("help screen should be closed")
	}
}
