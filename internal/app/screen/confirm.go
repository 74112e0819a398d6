package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazyscratch/internal/theme"
)

// Button indexes for ConfirmScreen.
const (
	ButtonConfirm = iota
	ButtonCancel
)

// ConfirmScreen displays a modal confirmation prompt with Confirm/Cancel buttons.
type ConfirmScreen struct {
	Message        string
	SelectedButton int
	Thm            *theme.Theme

	OnConfirm func() tea.Cmd
	OnCancel  func() tea.Cmd
}

// NewConfirmScreen creates a confirm screen with the Cancel button focused,
// so a stray enter never discards work.
func NewConfirmScreen(message string, thm *theme.Theme) *ConfirmScreen {
	return &ConfirmScreen{
		Message:        message,
		SelectedButton: ButtonCancel,
		Thm:            thm,
	}
}

// Type returns the screen type.
func (s *ConfirmScreen) Type() Type {
	return TypeConfirm
}

// Update processes keyboard events for the confirmation dialog.
// Returns nil to signal that the screen should be closed.
func (s *ConfirmScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case keyTab, "right", "l":
		s.SelectedButton = (s.SelectedButton + 1) % 2
	case keyShiftTab, "left", "h":
		s.SelectedButton = (s.SelectedButton + 1) % 2
	case "y", "Y":
		return nil, s.confirm()
	case "n", "N", keyQ:
		return nil, s.cancel()
	case keyEnter:
		if s.SelectedButton == ButtonConfirm {
			return nil, s.confirm()
		}
		return nil, s.cancel()
	default:
		if isCancelKey(key) {
			return nil, s.cancel()
		}
	}
	return s, nil
}

func (s *ConfirmScreen) confirm() tea.Cmd {
	if s.OnConfirm != nil {
		return s.OnConfirm()
	}
	return nil
}

func (s *ConfirmScreen) cancel() tea.Cmd {
	if s.OnCancel != nil {
		return s.OnCancel()
	}
	return nil
}

// View renders the confirmation UI box with focused button highlighting.
func (s *ConfirmScreen) View() string {
	width := 60
	height := 9

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.WarnFg).
		Padding(1, 2).
		Width(width).
		Height(height)

	messageStyle := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(s.Thm.TextFg)

	button := lipgloss.NewStyle().
		Width((width-6)/2).
		Align(lipgloss.Center).
		Padding(0, 2)

	focusedConfirm := button.Foreground(s.Thm.AccentFg).Background(s.Thm.ErrorFg).Bold(true)
	focusedCancel := button.Foreground(s.Thm.AccentFg).Background(s.Thm.Accent).Bold(true)
	unfocused := button.Foreground(s.Thm.MutedFg).Background(s.Thm.BorderDim)

	confirmButton := unfocused.Render("[Confirm]")
	cancelButton := focusedCancel.Render("[Cancel]")
	if s.SelectedButton == ButtonConfirm {
		confirmButton = focusedConfirm.Render("[Confirm]")
		cancelButton = unfocused.Render("[Cancel]")
	}

	return boxStyle.Render(fmt.Sprintf("%s\n\n%s  %s",
		messageStyle.Render(s.Message),
		confirmButton,
		cancelButton,
	))
}
