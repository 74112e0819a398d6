package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazyscratch/internal/theme"
)

const helpTextTemplate = `LazyScratch Help

**Explorer**
- j / {{ARROW_DOWN}}: Move cursor down
- k / {{ARROW_UP}}: Move cursor up
- g / G: Jump to first / last entry
- Enter / o: Open file, or expand / collapse folder
- Space: Expand / collapse folder
- a: Add a file to the folder under the cursor
- A: Add a folder inside the folder under the cursor (use / to nest)
- N: Add a top-level folder
- d / x: Delete the file under the cursor
- Tab: Focus the editor

**Editor**
- Type to edit the open file; changes stay in the buffer until saved
- Ctrl+S: Save the buffer into the file
- Esc / Tab: Return to the explorer

**Notifications**
- Every change shows a toast that disappears on its own
- Esc (explorer): Dismiss all toasts

**Help Navigation**
- /: Search help (Enter to apply, Esc to clear)
- q / Esc: Close help
- j / k: Scroll up / down
- Ctrl+D / Ctrl+U: Scroll half page down / up

**Configuration**
Configuration is read from (highest precedence first):
1. CLI overrides: lazyscratch --config=ls.key=value
2. YAML file: ~/.config/lazyscratch/config.yaml
3. Built-in defaults

Example: lazyscratch -C ls.theme=nord -C ls.toast_duration=5s

**Other**
- ?: Show this help
- q / Ctrl+C: Quit (asks first when the buffer has unsaved edits)`

// HelpScreen renders searchable documentation for the app controls.
type HelpScreen struct {
	Viewport    viewport.Model
	Width       int
	Height      int
	FullText    []string
	SearchInput textinput.Model
	Searching   bool
	SearchQuery string
	Thm         *theme.Theme
	ShowIcons   bool
}

// NewHelpScreen initializes help content with the available screen size.
func NewHelpScreen(maxWidth, maxHeight int, thm *theme.Theme, showIcons bool) *HelpScreen {
	replacer := strings.NewReplacer(
		"{{ARROW_UP}}", arrowUp(showIcons),
		"{{ARROW_DOWN}}", arrowDown(showIcons),
	)
	helpText := replacer.Replace(helpTextTemplate)

	ti := textinput.New()
	ti.Placeholder = "Search help (/ to start, Enter to apply, Esc to clear)"
	ti.CharLimit = 64
	ti.Prompt = "/ "
	ti.Blur()

	hs := &HelpScreen{
		Viewport:    viewport.New(0, 0),
		FullText:    strings.Split(helpText, "\n"),
		SearchInput: ti,
		Thm:         thm,
		ShowIcons:   showIcons,
	}
	hs.SetSize(maxWidth, maxHeight)
	hs.refreshContent()
	return hs
}

// Type returns TypeHelp to identify this screen.
func (s *HelpScreen) Type() Type {
	return TypeHelp
}

// Update handles scrolling and search input for the help screen.
func (s *HelpScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	switch {
	case key == "/" && !s.Searching:
		s.Searching = true
		s.SearchInput.Focus()
		return s, textinput.Blink
	case key == keyEnter && s.Searching:
		s.SearchQuery = strings.TrimSpace(s.SearchInput.Value())
		s.Searching = false
		s.SearchInput.Blur()
		s.refreshContent()
		return s, nil
	case isCancelKey(key):
		if s.Searching || s.SearchQuery != "" {
			s.clearSearch()
			return s, nil
		}
		return nil, nil
	case key == keyQ && !s.Searching:
		return nil, nil
	}

	if s.Searching {
		s.SearchInput, cmd = s.SearchInput.Update(msg)
		if query := strings.TrimSpace(s.SearchInput.Value()); query != s.SearchQuery {
			s.SearchQuery = query
			s.refreshContent()
		}
		return s, cmd
	}

	switch key {
	case "ctrl+d", " ":
		s.Viewport.HalfPageDown()
		return s, nil
	case "ctrl+u":
		s.Viewport.HalfPageUp()
		return s, nil
	case "j", "down":
		s.Viewport.ScrollDown(1)
		return s, nil
	case "k", "up":
		s.Viewport.ScrollUp(1)
		return s, nil
	}

	s.Viewport, cmd = s.Viewport.Update(msg)
	return s, cmd
}

func (s *HelpScreen) clearSearch() {
	s.Searching = false
	s.SearchInput.SetValue("")
	s.SearchQuery = ""
	s.SearchInput.Blur()
	s.refreshContent()
}

func (s *HelpScreen) refreshContent() {
	s.Viewport.SetContent(s.renderContent())
	s.Viewport.GotoTop()
}

// SetSize updates the help screen dimensions on terminal resize.
func (s *HelpScreen) SetSize(maxWidth, maxHeight int) {
	width := 72
	height := 26
	if maxWidth > 0 {
		width = minInt(90, maxInt(50, int(float64(maxWidth)*0.75)))
	}
	if maxHeight > 0 {
		height = minInt(36, maxInt(14, int(float64(maxHeight)*0.7)))
	}
	s.Width = width
	s.Height = height
	s.SearchInput.Width = maxInt(20, width-6)
	// borders, title and footer
	s.Viewport.Width = s.Width - 2
	s.Viewport.Height = maxInt(5, s.Height-4)
}

func (s *HelpScreen) renderContent() string {
	titleStyle := lipgloss.NewStyle().Foreground(s.Thm.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(s.Thm.SuccessFg).Bold(true)

	styledLines := make([]string, 0, len(s.FullText))
	for _, line := range s.FullText {
		if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
			header := strings.TrimPrefix(strings.TrimSuffix(line, "**"), "**")
			styledLines = append(styledLines, titleStyle.Render(DisclosureIndicator(false, s.ShowIcons)+" "+header))
			continue
		}
		if strings.HasPrefix(line, "- ") {
			if keys, description, ok := strings.Cut(strings.TrimPrefix(line, "- "), ": "); ok {
				styledLines = append(styledLines, "  "+keyStyle.Render(keys)+": "+description)
				continue
			}
		}
		styledLines = append(styledLines, line)
	}

	query := strings.ToLower(strings.TrimSpace(s.SearchQuery))
	if query == "" {
		return strings.Join(styledLines, "\n")
	}

	highlight := lipgloss.NewStyle().Foreground(s.Thm.AccentFg).Background(s.Thm.Accent).Bold(true)
	var filtered []string
	for _, line := range styledLines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, query) {
			filtered = append(filtered, highlightMatches(line, lower, query, highlight))
		}
	}
	if len(filtered) == 0 {
		return fmt.Sprintf("No help entries match %q", s.SearchQuery)
	}
	return strings.Join(filtered, "\n")
}

// highlightMatches highlights all occurrences of the query in the line.
func highlightMatches(line, lowerLine, lowerQuery string, style lipgloss.Style) string {
	if lowerQuery == "" || len(lowerLine) != len(line) {
		return line
	}

	var b strings.Builder
	searchFrom := 0
	for {
		idx := strings.Index(lowerLine[searchFrom:], lowerQuery)
		if idx < 0 {
			b.WriteString(line[searchFrom:])
			break
		}
		start := searchFrom + idx
		end := start + len(lowerQuery)
		b.WriteString(line[searchFrom:start])
		b.WriteString(style.Render(line[start:end]))
		searchFrom = end
	}
	return b.String()
}

// View renders the help content and search input inside the viewport.
func (s *HelpScreen) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Width(s.Width)

	title := lipgloss.NewStyle().
		Foreground(s.Thm.Accent).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(s.Thm.BorderDim).
		Width(s.Width-2).
		Padding(0, 1).
		Render("Help")

	blocks := []string{title}
	if s.Searching || s.SearchQuery != "" {
		blocks = append(blocks, lipgloss.NewStyle().
			Width(s.Width-2).
			Padding(0, 1).
			Render(s.SearchInput.View()))
	}

	body := lipgloss.NewStyle().
		Padding(0, 1).
		Width(s.Width - 2).
		Render(s.Viewport.View())

	footer := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg).
		Width(s.Width - 2).
		Padding(0, 1).
		Render("j/k: scroll • Ctrl+d/u: page • /: search • esc: close")

	blocks = append(blocks, body, footer)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}
