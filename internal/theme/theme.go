// Package theme provides theme definitions and management for the TUI.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines all colors used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Foreground color for text on Accent background
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	SuccessFg  lipgloss.Color
	WarnFg     lipgloss.Color
	ErrorFg    lipgloss.Color
	Cyan       lipgloss.Color // Folder names
	Yellow     lipgloss.Color // Unsaved marker
}

// Theme names.
const (
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NarnaName           = "narna"
	NordName            = "nord"
	GruvboxDarkName     = "gruvbox-dark"
	CatppuccinMochaName = "catppuccin-mocha"
)

type entry struct {
	build func() *Theme
	light bool
}

var registry = map[string]entry{
	DraculaName:         {build: Dracula},
	DraculaLightName:    {build: DraculaLight, light: true},
	NarnaName:           {build: Narna},
	NordName:            {build: Nord},
	GruvboxDarkName:     {build: GruvboxDark},
	CatppuccinMochaName: {build: CatppuccinMocha},
}

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: "#282A36",
		Accent:     "#BD93F9",
		AccentFg:   "#282A36",
		AccentDim:  "#44475A",
		Border:     "#6272A4",
		BorderDim:  "#44475A",
		MutedFg:    "#6272A4",
		TextFg:     "#F8F8F2",
		SuccessFg:  "#50FA7B",
		WarnFg:     "#FFB86C",
		ErrorFg:    "#FF5555",
		Cyan:       "#8BE9FD",
		Yellow:     "#F1FA8C",
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Background: "#FFFFFF",
		Accent:     "#C6DBE5",
		AccentFg:   "#24292F",
		AccentDim:  "#F3E8FF",
		Border:     "#D0D7DE",
		BorderDim:  "#E8E8E8",
		MutedFg:    "#6E7781",
		TextFg:     "#24292F",
		SuccessFg:  "#059669",
		WarnFg:     "#D97706",
		ErrorFg:    "#DC2626",
		Cyan:       "#0891B2",
		Yellow:     "#CA8A04",
	}
}

// Narna returns a balanced dark theme with blue accents.
func Narna() *Theme {
	return &Theme{
		Background: "#0D1117",
		Accent:     "#41ADFF",
		AccentFg:   "#0D1117",
		AccentDim:  "#1A2230",
		Border:     "#30363D",
		BorderDim:  "#20252D",
		MutedFg:    "#8B949E",
		TextFg:     "#E6EDF3",
		SuccessFg:  "#3FB950",
		WarnFg:     "#E3B341",
		ErrorFg:    "#F47067",
		Cyan:       "#7CE0F3",
		Yellow:     "#F2CC60",
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Background: "#2E3440",
		Accent:     "#88C0D0",
		AccentFg:   "#2E3440",
		AccentDim:  "#3B4252",
		Border:     "#4C566A",
		BorderDim:  "#434C5E",
		MutedFg:    "#81A1C1",
		TextFg:     "#E5E9F0",
		SuccessFg:  "#A3BE8C",
		WarnFg:     "#EBCB8B",
		ErrorFg:    "#BF616A",
		Cyan:       "#88C0D0",
		Yellow:     "#EBCB8B",
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Background: "#282828",
		Accent:     "#FABD2F",
		AccentFg:   "#282828",
		AccentDim:  "#3C3836",
		Border:     "#504945",
		BorderDim:  "#3C3836",
		MutedFg:    "#928374",
		TextFg:     "#EBDBB2",
		SuccessFg:  "#B8BB26",
		WarnFg:     "#FE8019",
		ErrorFg:    "#FB4934",
		Cyan:       "#83A598",
		Yellow:     "#FABD2F",
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Background: "#1E1E2E",
		Accent:     "#B4BEFE",
		AccentFg:   "#1E1E2E",
		AccentDim:  "#313244",
		Border:     "#45475A",
		BorderDim:  "#313244",
		MutedFg:    "#6C7086",
		TextFg:     "#CDD6F4",
		SuccessFg:  "#A6E3A1",
		WarnFg:     "#FAB387",
		ErrorFg:    "#F38BA8",
		Cyan:       "#89DCEB",
		Yellow:     "#F9E2AF",
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	if e, ok := registry[name]; ok {
		return e.build()
	}
	return Dracula()
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	_, ok := registry[name]
	return ok
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	return registry[name].light
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// AvailableThemes returns the sorted list of theme names.
func AvailableThemes() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
