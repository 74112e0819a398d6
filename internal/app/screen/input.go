package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazyscratch/internal/theme"
)

// InputScreen prompts for a single name. Submitting a blank value behaves
// like cancelling.
type InputScreen struct {
	Prompt      string
	Location    string
	Placeholder string
	Input       textinput.Model
	ErrorMsg    string
	Thm         *theme.Theme

	// Validate returns an error message to keep the prompt open.
	Validate func(string) string

	OnSubmit func(value string) tea.Cmd
	OnCancel func() tea.Cmd

	boxWidth int
}

// NewInputScreen creates an input screen with the given parameters.
func NewInputScreen(prompt, placeholder string, thm *theme.Theme) *InputScreen {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 128
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(thm.TextFg)
	ti.Width = 52

	return &InputScreen{
		Prompt:      prompt,
		Placeholder: placeholder,
		Input:       ti,
		Thm:         thm,
		boxWidth:    60,
	}
}

// SetValidation sets a validation function that returns an error message.
func (s *InputScreen) SetValidation(fn func(string) string) {
	s.Validate = fn
}

// SetLocation shows where the new entry will be created.
func (s *InputScreen) SetLocation(location string) {
	s.Location = location
}

// Value returns the trimmed text entered so far.
func (s *InputScreen) Value() string {
	return strings.TrimSpace(s.Input.Value())
}

// Type returns the screen type.
func (s *InputScreen) Type() Type {
	return TypeInput
}

// Update handles keyboard input for the input screen.
// Returns nil to signal the screen should be closed.
func (s *InputScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	key := msg.String()

	switch {
	case key == keyEnter:
		value := s.Value()
		if value == "" {
			return nil, s.cancel()
		}
		if s.Validate != nil {
			if errMsg := strings.TrimSpace(s.Validate(value)); errMsg != "" {
				s.ErrorMsg = errMsg
				return s, nil
			}
		}
		s.ErrorMsg = ""
		if s.OnSubmit != nil {
			return nil, s.OnSubmit(value)
		}
		return nil, nil

	case isCancelKey(key):
		return nil, s.cancel()
	}

	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	if s.ErrorMsg != "" && (msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace) {
		s.ErrorMsg = ""
	}
	return s, cmd
}

func (s *InputScreen) cancel() tea.Cmd {
	if s.OnCancel != nil {
		return s.OnCancel()
	}
	return nil
}

// View renders the prompt box: title, target folder, text field, validation
// error and key hints.
func (s *InputScreen) View() string {
	inner := s.boxWidth - 6
	line := func(fg lipgloss.Color, bold bool, text string) string {
		return lipgloss.NewStyle().
			Foreground(fg).
			Bold(bold).
			Width(inner).
			Align(lipgloss.Center).
			Render(text)
	}

	parts := []string{line(s.Thm.Accent, true, s.Prompt)}
	if s.Location != "" {
		parts = append(parts, line(s.Thm.MutedFg, false, "in "+s.Location))
	}

	field := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.Thm.Border).
		Padding(0, 1).
		Width(inner).
		Render(s.Input.View())
	parts = append(parts, field)

	if s.ErrorMsg != "" {
		parts = append(parts, line(s.Thm.ErrorFg, false, s.ErrorMsg))
	}
	parts = append(parts, line(s.Thm.MutedFg, false, "Enter to confirm • Esc to cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Padding(1, 2).
		Width(s.boxWidth).
		Render(strings.Join(parts, "\n\n"))
}
