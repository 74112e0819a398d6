package screen

// Key constants shared by the modal screens.
const (
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyEscRaw   = "\x1b" // some terminals send ESC as a rune
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyQ        = "q"
	keyCtrlC    = "ctrl+c"
)

func isCancelKey(key string) bool {
	return key == keyEsc || key == keyEscRaw || key == keyCtrlC
}
