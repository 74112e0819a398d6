// Package config loads application configuration from YAML and CLI overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chmouel/lazyscratch/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	appName = "lazyscratch"

	// OverridePrefix prefixes keys passed with --config.
	OverridePrefix = "ls."

	defaultToastDuration = 3 * time.Second
	defaultMaxToasts     = 3
	defaultExplorerWidth = 30
	minExplorerWidth     = 20
	maxExplorerWidth     = 60
)

// AppConfig defines the global lazyscratch configuration options.
type AppConfig struct {
	Theme          string        // Theme name: see AvailableThemes in internal/theme
	ShowIcons      bool          // Render Nerd Font icons in the explorer (default: true)
	DebugLog       string        // Path of the debug log file
	ToastDuration  time.Duration // How long notifications stay visible (default: 3s)
	MaxToasts      int           // Maximum notifications stacked on screen (default: 3)
	DefaultFolders []string      // Root folders present at startup (default: ["default"])
	ExplorerWidth  int           // Explorer pane width in percent, clamped to 20-60
	WatchConfig    bool          // Reload theme and notification settings when the file changes
	Path           string        `yaml:"-"` // File the configuration was read from, if any
	// Overrides are the ls.key=value pairs applied from the command line, in
	// order. Reload applies them again so flags outlive a file change.
	Overrides []string `yaml:"-"`
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:          theme.DefaultDark(),
		ShowIcons:      true,
		ToastDuration:  defaultToastDuration,
		MaxToasts:      defaultMaxToasts,
		DefaultFolders: []string{"default"},
		ExplorerWidth:  defaultExplorerWidth,
	}
}

// IconsEnabled reports whether Nerd Font icons should be rendered.
func (cfg *AppConfig) IconsEnabled() bool {
	return cfg != nil && cfg.ShowIcons
}

// normalizeList converts a scalar or YAML sequence into a list of strings.
func normalizeList(value any) []string {
	if value == nil {
		return []string{}
	}

	switch v := value.(type) {
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return []string{}
		}
		return []string{text}
	case []any:
		items := []string{}
		for _, item := range v {
			if item == nil {
				continue
			}
			text := strings.TrimSpace(fmt.Sprintf("%v", item))
			if text != "" {
				items = append(items, text)
			}
		}
		return items
	}
	return []string{}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case int:
		return v
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return defaultVal
}

// coerceDuration accepts Go duration strings ("3s", "1500ms") or a bare
// number of milliseconds.
func coerceDuration(value any, defaultVal time.Duration) time.Duration {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case int:
		return time.Duration(v) * time.Millisecond
	case string:
		text := strings.TrimSpace(v)
		if d, err := time.ParseDuration(text); err == nil {
			return d
		}
		if ms, err := strconv.Atoi(text); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultVal
}

func clampInt(value, minValue, maxValue int) int {
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

// parseConfig builds a configuration from decoded YAML data.
func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	cfg.apply(data)
	return cfg
}

// apply overlays the keys present in data onto cfg.
func (cfg *AppConfig) apply(data map[string]any) {
	if themeName, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}

	if debugLog, ok := data["debug_log"].(string); ok {
		if debugLog = strings.TrimSpace(debugLog); debugLog != "" {
			cfg.DebugLog = debugLog
		}
	}

	if _, ok := data["show_icons"]; ok {
		cfg.ShowIcons = coerceBool(data["show_icons"], cfg.ShowIcons)
	}
	if _, ok := data["watch_config"]; ok {
		cfg.WatchConfig = coerceBool(data["watch_config"], cfg.WatchConfig)
	}
	if _, ok := data["toast_duration"]; ok {
		cfg.ToastDuration = coerceDuration(data["toast_duration"], cfg.ToastDuration)
	}
	if _, ok := data["max_toasts"]; ok {
		cfg.MaxToasts = coerceInt(data["max_toasts"], cfg.MaxToasts)
	}
	if _, ok := data["explorer_width"]; ok {
		cfg.ExplorerWidth = coerceInt(data["explorer_width"], cfg.ExplorerWidth)
	}
	if _, ok := data["default_folders"]; ok {
		cfg.DefaultFolders = normalizeList(data["default_folders"])
	}

	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = defaultToastDuration
	}
	if cfg.MaxToasts < 1 {
		cfg.MaxToasts = 1
	}
	cfg.ExplorerWidth = clampInt(cfg.ExplorerWidth, minExplorerWidth, maxExplorerWidth)
}

// ApplyCLIOverrides applies --config=ls.key=value overrides on top of the
// loaded configuration.
func (cfg *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}
	cfg.apply(data)
	cfg.Overrides = append(cfg.Overrides, overrides...)
	return nil
}

// parseCLIConfigOverrides parses --config=ls.key=value format.
// Returns a map suitable for parseConfig().
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)

	for _, override := range overrides {
		fullKey, value, found := strings.Cut(override, "=")
		if !found {
			return nil, fmt.Errorf("invalid config override: %q, expected format: ls.key=value (note: use = not space)", override)
		}

		if !strings.HasPrefix(fullKey, OverridePrefix) {
			return nil, fmt.Errorf("config override key must start with %q: %q", OverridePrefix, fullKey)
		}

		key := strings.TrimPrefix(fullKey, OverridePrefix)
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}

		// Repeated keys become a list, which parseConfig expects as []any.
		switch existing := result[key].(type) {
		case nil:
			result[key] = value
		case string:
			result[key] = []any{existing, value}
		case []any:
			result[key] = append(existing, value)
		}
	}

	return result, nil
}

// Dir returns the directory holding the configuration file.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Clean(filepath.Join(base, appName))
}

// LoadConfig reads the configuration file. An empty configPath looks for
// config.yaml or config.yml in Dir(). A missing file yields the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := Dir()

	var paths []string
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		cfg, err := readConfigFile(path)
		if err != nil {
			return DefaultConfig(), err
		}
		return cfg, nil
	}

	return DefaultConfig(), nil
}

// Reload re-reads the file the configuration was loaded from, then applies
// the command line overrides on top again.
func (cfg *AppConfig) Reload() (*AppConfig, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("configuration was not loaded from a file")
	}
	next, err := readConfigFile(cfg.Path)
	if err != nil {
		return nil, err
	}
	// One at a time: a key given twice must keep its last value.
	for _, override := range cfg.Overrides {
		if err := next.ApplyCLIOverrides([]string{override}); err != nil {
			return nil, err
		}
	}
	return next, nil
}

func readConfigFile(path string) (*AppConfig, error) {
	// #nosec G304 -- path is constrained to the config directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var yamlData map[string]any
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := parseConfig(yamlData)
	cfg.Path = path
	return cfg, nil
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

func isPathWithin(base, target string) bool {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(target))
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}

// NormalizeThemeName returns the canonical theme name, or "" if unknown.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if theme.Exists(name) {
		return name
	}
	return ""
}
