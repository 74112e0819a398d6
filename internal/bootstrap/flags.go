// Package bootstrap wires the lazyscratch command line and launches the TUI.
package bootstrap

import (
	"fmt"
	"io"
	"strings"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazyscratch/internal/config"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=" + config.OverridePrefix + "key=value",
		},
		&urfavecli.StringSliceFlag{
			Name:    "folder",
			Aliases: []string{"f"},
			Usage:   "Start with this top-level folder instead of the configured ones (repeatable)",
		},
		&urfavecli.BoolFlag{
			Name:  "no-icons",
			Usage: "Disable Nerd Font icons in the explorer",
		},
	}
}

// outputAllFlags prints every global flag name, one per line, for shell
// completion scripts.
func outputAllFlags(w io.Writer, cmd *urfavecli.Command) {
	for _, flag := range cmd.Flags {
		for _, name := range flag.Names() {
			prefix := "--"
			if len(name) == 1 {
				prefix = "-"
			}
			_, _ = fmt.Fprintln(w, prefix+name)
		}
	}
}

// suggestConfigKeys returns the --config keys matching prefix in
// "ls.key=" form.
func suggestConfigKeys(prefix string) []string {
	keys := []string{
		"theme", "show_icons", "debug_log", "toast_duration", "max_toasts",
		"default_folders", "explorer_width", "watch_config",
	}

	var matches []string
	for _, key := range keys {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			matches = append(matches, config.OverridePrefix+key+"=")
		}
	}
	return matches
}
