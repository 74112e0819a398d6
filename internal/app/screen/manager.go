package screen

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Manager keeps the stack of open modal screens. Only the top screen
// receives keys and is rendered.
type Manager struct {
	current Screen
	stack   []Screen
}

// NewManager creates an empty screen manager.
func NewManager() *Manager {
	return &Manager{
		stack: make([]Screen, 0),
	}
}

// Push shows s above whatever is currently open.
func (m *Manager) Push(s Screen) {
	if s == nil {
		return
	}
	if m.current != nil {
		m.stack = append(m.stack, m.current)
	}
	m.current = s
}

// Pop removes the current screen and restores the previous one.
// Returns the screen that was removed, or nil if no screen was active.
func (m *Manager) Pop() Screen {
	removed := m.current
	if len(m.stack) > 0 {
		m.current = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
	} else {
		m.current = nil
	}
	return removed
}

// Current returns the currently active screen, or nil if none.
func (m *Manager) Current() Screen {
	return m.current
}

// IsActive returns true if there is a screen currently displayed.
func (m *Manager) IsActive() bool {
	return m.current != nil
}

// Type returns the type of the current screen, or TypeNone if no screen is active.
func (m *Manager) Type() Type {
	if m.current == nil {
		return TypeNone
	}
	return m.current.Type()
}

// HandleKey routes msg to the current screen. A screen that returns nil is
// popped; a screen that returns a different screen replaces itself.
func (m *Manager) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if m.current == nil {
		return nil
	}
	before := m.current
	next, cmd := before.Update(msg)
	switch {
	case next == nil:
		// the callback may already have pushed a follow-up screen
		if m.current == before {
			m.Pop()
		} else {
			m.removeFromStack(before)
		}
	case next != before && m.current == before:
		m.current = next
	}
	return cmd
}

func (m *Manager) removeFromStack(s Screen) {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if m.stack[i] == s {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			return
		}
	}
}

// Clear removes all screens from the stack.
func (m *Manager) Clear() {
	m.current = nil
	m.stack = m.stack[:0]
}

// StackDepth returns the number of screens in the stack (excluding current).
func (m *Manager) StackDepth() int {
	return len(m.stack)
}
