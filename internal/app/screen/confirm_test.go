package screen

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazyscratch/internal/theme"
)

func TestConfirmScreenDefaultsToCancel(t *testing.T) {
	s := NewConfirmScreen("Quit and discard unsaved edits?", theme.Dracula())
	confirmed, cancelled := false, false
	s.OnConfirm = func() tea.Cmd {
		confirmed = true
		return nil
	}
	s.OnCancel = func() tea.Cmd {
		cancelled = true
		return nil
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next != nil {
		t.Fatal("expected screen to close")
	}
	if confirmed || !cancelled {
		t.Fatalf("enter on default button should cancel: confirmed=%v cancelled=%v", confirmed, cancelled)
	}
}

func TestConfirmScreenNavigation(t *testing.T) {
	s := NewConfirmScreen("sure?", theme.Dracula())
	confirmed := false
	s.OnConfirm = func() tea.Cmd {
		confirmed = true
		return nil
	}

	updated, _ := s.Update(runes("h"))
	if updated.(*ConfirmScreen).SelectedButton != ButtonConfirm {
		t.Fatal("expected focus to move to confirm")
	}
	if _, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter}); !confirmed {
		t.Fatal("expected enter on confirm button to confirm")
	}
}

func TestConfirmScreenShortcuts(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("y"), runes("Y")} {
		s := NewConfirmScreen("sure?", theme.Dracula())
		called := false
		s.OnConfirm = func() tea.Cmd {
			called = true
			return nil
		}
		if next, _ := s.Update(key); next != nil || !called {
			t.Errorf("expected %q to confirm", key.String())
		}
	}

	for _, key := range []tea.KeyMsg{runes("n"), runes("q"), {Type: tea.KeyEsc}} {
		s := NewConfirmScreen("sure?", theme.Dracula())
		called := false
		s.OnCancel = func() tea.Cmd {
			called = true
			return nil
		}
		if next, _ := s.Update(key); next != nil || !called {
			t.Errorf("expected %q to cancel", key.String())
		}
	}
}

func TestConfirmScreenIgnoresOtherKeys(t *testing.T) {
	s := NewConfirmScreen("sure?", theme.Dracula())
	if next, _ := s.Update(runes("z")); next != s {
		t.Fatal("expected unrelated key to keep the screen open")
	}
	if !strings.Contains(s.View(), "sure?") {
		t.Error("expected message in view")
	}
}
