package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/chmouel/lazyscratch/internal/app"
	"github.com/chmouel/lazyscratch/internal/buildinfo"
	"github.com/chmouel/lazyscratch/internal/config"
	"github.com/chmouel/lazyscratch/internal/log"
)

const appName = "lazyscratch"

var errNoTerminal = errors.New(appName + " needs an interactive terminal")

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runProgram runs the TUI for model. Tests replace it.
var runProgram = func(model *app.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Run parses args and executes the matching command.
func Run(ctx context.Context, args []string) error {
	return newCommand(os.Stdout, os.Stderr).Run(ctx, args)
}

func newCommand(stdout, stderr io.Writer) *urfavecli.Command {
	return &urfavecli.Command{
		Name:            appName,
		Usage:           "A scratchpad of folders and text files in your terminal",
		Version:         buildinfo.String(),
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags:           globalFlags(),
		Commands:        []*urfavecli.Command{themesCommand(), versionCommand(), completionCommand()},
		Action:          runTUI,
		HideHelpCommand: true,
	}
}

// runTUI is the default action that launches the TUI when no subcommand is given.
func runTUI(_ context.Context, cmd *urfavecli.Command) error {
	stderr := cmd.Root().ErrWriter

	// Set up debug logging before loading config
	debugLog := cmd.String("debug-log")
	if debugLog != "" {
		setLogFile(stderr, debugLog)
	}

	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// If debug log wasn't set via flag, check if it's in the config
	if debugLog == "" {
		if cfg.DebugLog != "" {
			setLogFile(stderr, cfg.DebugLog)
		} else {
			// No debug log configured, discard any buffered logs
			_ = log.SetFile("")
		}
	}

	if err := prepareConfig(cfg, cmd); err != nil {
		_ = log.Close()
		return err
	}

	if !isTerminal() {
		_ = log.Close()
		return errNoTerminal
	}

	log.Infow("starting", "version", buildinfo.Version(), "theme", cfg.Theme, "folders", cfg.DefaultFolders)
	model := app.NewModel(cfg)
	err = runProgram(model)
	model.Close()
	if err != nil {
		_ = log.Close()
		return fmt.Errorf("error running app: %w", err)
	}

	if err := log.Close(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error closing debug log: %v\n", err)
	}
	return nil
}

// prepareConfig applies the command line on top of the loaded config. CLI
// overrides have the highest precedence. Flags that a config reload could
// change are recorded as overrides too.
func prepareConfig(cfg *config.AppConfig, cmd *urfavecli.Command) error {
	if err := applyThemeConfig(cfg, cmd.String("theme")); err != nil {
		return err
	}
	if folders := cmd.StringSlice("folder"); len(folders) > 0 {
		cfg.DefaultFolders = folders
	}
	if cmd.Bool("no-icons") {
		if err := cfg.ApplyCLIOverrides([]string{config.OverridePrefix + "show_icons=false"}); err != nil {
			return err
		}
	}
	if debugLog := cmd.String("debug-log"); debugLog != "" {
		cfg.DebugLog = expandOrKeep(debugLog)
	}
	if overrides := cmd.StringSlice("config"); len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return fmt.Errorf("error applying config overrides: %w", err)
		}
	}
	return nil
}

func setLogFile(stderr io.Writer, path string) {
	path = expandOrKeep(path)
	if err := log.SetFile(path); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

func expandOrKeep(path string) string {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
