// Package state holds plain UI state shared by the app model.
package state

// Pane identifies a focusable pane.
type Pane int

// Pane options.
const (
	PaneExplorer Pane = iota
	PaneEditor
)

// String returns the pane title.
func (p Pane) String() string {
	if p == PaneEditor {
		return "Editor"
	}
	return "Explorer"
}

// Next returns the pane focused by tab.
func (p Pane) Next() Pane {
	if p == PaneExplorer {
		return PaneEditor
	}
	return PaneExplorer
}

// ViewState holds UI-related state for the model.
type ViewState struct {
	FocusedPane  Pane
	WindowWidth  int
	WindowHeight int
}
