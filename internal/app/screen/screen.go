// Package screen provides the modal overlays shown above the explorer and
// editor panes: name prompts, confirmations and the help viewer.
package screen

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a modal overlay. It receives every key while it is on top of
// the stack.
type Screen interface {
	// Update handles a key. A nil Screen closes the overlay; a different
	// Screen replaces it.
	Update(msg tea.KeyMsg) (Screen, tea.Cmd)
	View() string
	Type() Type
}

// Type tags a screen for the manager and for tests.
type Type int

// Screen types.
const (
	TypeNone Type = iota
	TypeConfirm
	TypeInput
	TypeHelp
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeConfirm:
		return "confirm"
	case TypeInput:
		return "input"
	case TypeHelp:
		return "help"
	default:
		return "unknown"
	}
}
