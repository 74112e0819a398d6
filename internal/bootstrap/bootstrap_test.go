package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazyscratch/internal/app"
	"github.com/chmouel/lazyscratch/internal/buildinfo"
	"github.com/chmouel/lazyscratch/internal/config"
)

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out, errOut bytes.Buffer
	err = newCommand(&out, &errOut).Run(context.Background(), append([]string{appName}, args...))
	return out.String(), errOut.String(), err
}

func stubTerminal(t *testing.T, tty bool, run func(*app.Model) error) {
	t.Helper()
	origTerminal, origRun := isTerminal, runProgram
	isTerminal = func() bool { return tty }
	runProgram = run
	t.Cleanup(func() {
		isTerminal = origTerminal
		runProgram = origRun
	})
}

func TestThemesCommand(t *testing.T) {
	out, _, err := runCommand(t, "themes")
	require.NoError(t, err)

	assert.Contains(t, out, "Available themes:")
	assert.Contains(t, out, " * dracula")
	assert.Contains(t, out, "nord")
	assert.Contains(t, out, "(light)")
}

func TestVersionCommand(t *testing.T) {
	buildinfo.Set("1.2.3", "abc123", "2026-01-01", "ci")
	t.Cleanup(func() { buildinfo.Set("dev", "none", "unknown", "unknown") })

	out, _, err := runCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "lazyscratch version 1.2.3")
	assert.Contains(t, out, "commit: abc123")
	assert.Contains(t, out, "built by: ci")
}

func TestFlagsCommand(t *testing.T) {
	out, _, err := runCommand(t, "flags")
	require.NoError(t, err)

	for _, want := range []string{"--theme", "-t", "--debug-log", "--config", "-C", "--folder", "--no-icons", "ls.theme=", "ls.watch_config="} {
		assert.Contains(t, out, want)
	}
}

func TestSuggestConfigKeys(t *testing.T) {
	assert.Equal(t, []string{"ls.show_icons="}, suggestConfigKeys("show"))
	assert.Len(t, suggestConfigKeys(""), 8)
	assert.Empty(t, suggestConfigKeys("nope"))
}

func TestRunTUIRequiresTerminal(t *testing.T) {
	called := false
	stubTerminal(t, false, func(*app.Model) error {
		called = true
		return nil
	})

	_, _, err := runCommand(t)
	require.ErrorIs(t, err, errNoTerminal)
	assert.False(t, called)
}

func TestRunTUIRejectsUnknownTheme(t *testing.T) {
	stubTerminal(t, true, func(*app.Model) error { return nil })

	_, _, err := runCommand(t, "--theme", "solarized-neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "solarized-neon"`)
}

func TestRunTUIRunsProgram(t *testing.T) {
	var got *app.Model
	stubTerminal(t, true, func(m *app.Model) error {
		got = m
		return nil
	})

	_, _, err := runCommand(t, "--folder", "notes")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRunTUIWrapsProgramError(t *testing.T) {
	stubTerminal(t, true, func(*app.Model) error { return errors.New("boom") })

	_, _, err := runCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error running app: boom")
}

func TestRunTUIReportsBadConfigFile(t *testing.T) {
	stubTerminal(t, true, func(*app.Model) error { return nil })

	_, stderr, err := runCommand(t, "--config-file", "/etc/lazyscratch.yaml")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Error loading config")
}

func TestPrepareConfig(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *config.AppConfig)
		err   string
	}{
		{
			name: "theme flag",
			args: []string{"-t", "Nord"},
			check: func(t *testing.T, cfg *config.AppConfig) {
				assert.Equal(t, "nord", cfg.Theme)
			},
		},
		{
			name: "folders replace defaults",
			args: []string{"-f", "work", "--folder", "home"},
			check: func(t *testing.T, cfg *config.AppConfig) {
				assert.Equal(t, []string{"work", "home"}, cfg.DefaultFolders)
			},
		},
		{
			name: "no icons",
			args: []string{"--no-icons"},
			check: func(t *testing.T, cfg *config.AppConfig) {
				assert.False(t, cfg.ShowIcons)
				assert.Equal(t, []string{"ls.show_icons=false"}, cfg.Overrides)
			},
		},
		{
			name: "overrides win over flags",
			args: []string{"--theme", "nord", "-C", "ls.theme=narna", "--config=ls.max_toasts=5"},
			check: func(t *testing.T, cfg *config.AppConfig) {
				assert.Equal(t, "narna", cfg.Theme)
				assert.Equal(t, 5, cfg.MaxToasts)
				assert.Equal(t, []string{"ls.theme=nord", "ls.theme=narna", "ls.max_toasts=5"}, cfg.Overrides)
			},
		},
		{
			name: "malformed override",
			args: []string{"-C", "theme=nord"},
			err:  "error applying config overrides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cmd := &urfavecli.Command{
				Name:  appName,
				Flags: globalFlags(),
				Action: func(_ context.Context, cmd *urfavecli.Command) error {
					return prepareConfig(cfg, cmd)
				},
			}
			err := cmd.Run(context.Background(), append([]string{appName}, tt.args...))
			if tt.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
