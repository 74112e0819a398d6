package screen

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazyscratch/internal/theme"
)

func TestHelpScreenSearchFilters(t *testing.T) {
	s := NewHelpScreen(120, 40, theme.Dracula(), false)

	s.Update(runes("/"))
	if !s.Searching {
		t.Fatal("expected search mode")
	}
	s.Update(runes("ctrl+s"))
	content := s.renderContent()
	if !strings.Contains(content, "Save the buffer") {
		t.Fatalf("expected save entry in filtered help:\n%s", content)
	}
	if strings.Contains(content, "Move cursor down") {
		t.Fatal("expected unrelated entries to be filtered out")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.Searching || s.SearchQuery != "ctrl+s" {
		t.Fatalf("expected applied query, got searching=%v query=%q", s.Searching, s.SearchQuery)
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next != s || s.SearchQuery != "" {
		t.Fatal("expected first esc to clear the search")
	}
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next != nil {
		t.Fatal("expected second esc to close help")
	}
}

func TestHelpScreenNoMatches(t *testing.T) {
	s := NewHelpScreen(0, 0, theme.Dracula(), true)
	s.SearchQuery = "zzzz-nothing"
	if got := s.renderContent(); !strings.Contains(got, "No help entries match") {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestHelpScreenQuitKey(t *testing.T) {
	s := NewHelpScreen(100, 30, theme.Nord(), false)
	if next, _ := s.Update(runes("q")); next != nil {
		t.Fatal("expected q to close help")
	}
}

func TestHelpScreenSize(t *testing.T) {
	s := NewHelpScreen(200, 100, theme.Dracula(), false)
	if s.Width != 90 || s.Height != 36 {
		t.Fatalf("expected clamped size, got %dx%d", s.Width, s.Height)
	}
	s.SetSize(40, 10)
	if s.Width != 50 || s.Height != 14 {
		t.Fatalf("expected minimum size, got %dx%d", s.Width, s.Height)
	}
	if !strings.Contains(s.View(), "Help") {
		t.Error("expected title in view")
	}
}
