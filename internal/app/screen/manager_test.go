package screen

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazyscratch/internal/theme"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewManager(t *testing.T) {
	m := NewManager()
	if m == nil {
		t.Fatal("expected non-nil manager")
	}
	if m.IsActive() {
		t.Error("expected new manager to have no active screen")
	}
	if m.Type() != TypeNone {
		t.Errorf("expected TypeNone, got %v", m.Type())
	}
}

func TestManagerPushPop(t *testing.T) {
	m := NewManager()
	thm := theme.Dracula()

	confirm := NewConfirmScreen("discard?", thm)
	m.Push(confirm)
	if m.Type() != TypeConfirm {
		t.Errorf("expected TypeConfirm, got %v", m.Type())
	}

	help := NewHelpScreen(120, 40, thm, false)
	m.Push(help)
	if m.Type() != TypeHelp {
		t.Errorf("expected TypeHelp, got %v", m.Type())
	}
	if m.StackDepth() != 1 {
		t.Errorf("expected stack depth 1, got %d", m.StackDepth())
	}

	if popped := m.Pop(); popped != help {
		t.Error("expected to pop the help screen")
	}
	if m.Current() != confirm {
		t.Error("expected confirm screen to be restored")
	}
	m.Pop()
	if m.IsActive() {
		t.Error("expected manager to be inactive after popping all screens")
	}
}

func TestManagerPushNilIsIgnored(t *testing.T) {
	m := NewManager()
	m.Push(nil)
	if m.IsActive() {
		t.Error("expected nil push to be ignored")
	}
}

func TestManagerClear(t *testing.T) {
	m := NewManager()
	thm := theme.Dracula()
	m.Push(NewConfirmScreen("one", thm))
	m.Push(NewConfirmScreen("two", thm))

	m.Clear()
	if m.IsActive() {
		t.Error("expected manager to be inactive after clear")
	}
	if m.StackDepth() != 0 {
		t.Errorf("expected stack depth 0, got %d", m.StackDepth())
	}
}

func TestManagerHandleKeyPopsClosedScreen(t *testing.T) {
	m := NewManager()
	thm := theme.Dracula()
	m.Push(NewInputScreen("Folder name", "", thm))

	m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsActive() {
		t.Error("expected input screen to be closed by esc")
	}
}

func TestManagerHandleKeyKeepsFollowUpScreen(t *testing.T) {
	m := NewManager()
	thm := theme.Dracula()
	follow := NewConfirmScreen("follow up", thm)

	input := NewInputScreen("File name", "", thm)
	input.OnSubmit = func(string) tea.Cmd {
		m.Push(follow)
		return nil
	}
	m.Push(input)

	m.HandleKey(runes("a.txt"))
	m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if m.Current() != follow {
		t.Fatalf("expected follow-up screen, got %v", m.Type())
	}
	if m.StackDepth() != 0 {
		t.Errorf("expected submitted input to leave the stack, depth %d", m.StackDepth())
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		t        Type
		expected string
	}{
		{TypeNone, "none"},
		{TypeConfirm, "confirm"},
		{TypeInput, "input"},
		{TypeHelp, "help"},
		{Type(999), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.t.String(); got != tc.expected {
			t.Errorf("Type(%d).String() = %q, want %q", tc.t, got, tc.expected)
		}
	}
}

func TestDisclosureIndicator(t *testing.T) {
	if got := DisclosureIndicator(true, false); got != ">" {
		t.Errorf("collapsed text indicator = %q", got)
	}
	if got := DisclosureIndicator(false, true); got != "▼" {
		t.Errorf("expanded icon indicator = %q", got)
	}
	if !strings.Contains(arrowUp(false)+arrowDown(false), "UpDown") {
		t.Error("expected text arrows without icons")
	}
}
