package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"
	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazyscratch/internal/buildinfo"
	"github.com/chmouel/lazyscratch/internal/config"
	"github.com/chmouel/lazyscratch/internal/theme"
)

func themesCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "themes",
		Usage: "List available UI themes",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			printThemes(cmd.Root().Writer)
			return nil
		},
	}
}

func versionCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			printVersion(cmd.Root().Writer)
			return nil
		},
	}
}

func completionCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:   "flags",
		Usage:  "Print flag names and config keys for shell completion",
		Hidden: true,
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			w := cmd.Root().Writer
			outputAllFlags(w, cmd.Root())
			for _, key := range suggestConfigKeys("") {
				_, _ = fmt.Fprintln(w, key)
			}
			return nil
		},
	}
}

// printThemes lists every theme with a swatch of its main colours.
func printThemes(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Available themes:")
	for _, name := range theme.AvailableThemes() {
		t := theme.GetTheme(name)
		marker := " "
		if name == theme.DefaultDark() {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, " %s %-18s ", marker, name)
		for _, c := range []string{string(t.Accent), string(t.Cyan), string(t.SuccessFg), string(t.WarnFg), string(t.ErrorFg)} {
			swatch(c).Fprint(w, "  ")
		}
		if theme.IsLight(name) {
			_, _ = fmt.Fprint(w, "  (light)")
		}
		_, _ = fmt.Fprintln(w)
	}
}

// swatch returns a background colour printer for a #rrggbb value.
func swatch(hex string) *color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.New(color.BgWhite)
	}
	r, g, b := c.RGB255()
	return color.BgRGB(int(r), int(g), int(b))
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	buildinfo.Enrich()
	_, _ = fmt.Fprintf(w, "%s version %s\ncommit: %s\nbuilt at: %s\nbuilt by: %s\n",
		appName, buildinfo.Version(), buildinfo.Commit(), buildinfo.Date(), buildinfo.BuiltBy())
}

// applyThemeConfig applies the theme given on the command line. It is
// recorded as an override so a config reload keeps it.
func applyThemeConfig(cfg *config.AppConfig, themeName string) error {
	if themeName == "" {
		return nil
	}

	normalized := config.NormalizeThemeName(themeName)
	if normalized == "" {
		return fmt.Errorf("unknown theme %q", themeName)
	}

	return cfg.ApplyCLIOverrides([]string{config.OverridePrefix + "theme=" + normalized})
}
