package app

import (
	"github.com/chmouel/lazyscratch/internal/config"
)

// Message types for the Bubble Tea app.
type (
	toastExpiredMsg struct {
		id string
	}
	configChangedMsg  struct{}
	configReloadedMsg struct {
		cfg *config.AppConfig
		err error
	}
)
