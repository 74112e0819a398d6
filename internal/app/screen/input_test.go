package screen

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazyscratch/internal/theme"
)

func TestInputScreenSubmit(t *testing.T) {
	s := NewInputScreen("File name", "notes.md", theme.Dracula())
	var got string
	s.OnSubmit = func(value string) tea.Cmd {
		got = value
		return nil
	}

	s.Update(runes("  todo.md "))
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next != nil {
		t.Fatal("expected input screen to close on submit")
	}
	if got != "todo.md" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestInputScreenBlankSubmitCancels(t *testing.T) {
	s := NewInputScreen("File name", "", theme.Dracula())
	submitted, cancelled := false, false
	s.OnSubmit = func(string) tea.Cmd {
		submitted = true
		return nil
	}
	s.OnCancel = func() tea.Cmd {
		cancelled = true
		return nil
	}

	s.Update(runes("   "))
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next != nil {
		t.Fatal("expected screen to close")
	}
	if submitted || !cancelled {
		t.Fatalf("blank submit should cancel: submitted=%v cancelled=%v", submitted, cancelled)
	}
}

func TestInputScreenValidationKeepsOpen(t *testing.T) {
	s := NewInputScreen("File name", "", theme.Dracula())
	s.SetValidation(func(v string) string {
		if strings.Contains(v, "/") {
			return "File names cannot contain /"
		}
		return ""
	})

	s.Update(runes("a/b"))
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next != s {
		t.Fatal("expected screen to stay open on validation error")
	}
	if s.ErrorMsg == "" {
		t.Fatal("expected error message")
	}
	if !strings.Contains(s.View(), "cannot contain") {
		t.Error("expected error in view")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if s.ErrorMsg != "" {
		t.Error("expected error to clear while editing")
	}
}

func TestInputScreenEscCancels(t *testing.T) {
	s := NewInputScreen("Folder name", "", theme.Dracula())
	cancelled := false
	s.OnCancel = func() tea.Cmd {
		cancelled = true
		return nil
	}
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next != nil || !cancelled {
		t.Fatal("expected esc to cancel and close")
	}
}

func TestInputScreenViewShowsLocation(t *testing.T) {
	s := NewInputScreen("New file", "", theme.Nord())
	s.SetLocation("docs/drafts")
	view := s.View()
	if !strings.Contains(view, "New file") || !strings.Contains(view, "in docs/drafts") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}
