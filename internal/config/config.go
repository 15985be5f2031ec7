package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/keycalc/internal/renderer/core"
)

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultErrorText     = "Error"
	DefaultMaxDigits     = 0 // no cap
	DefaultHistoryLimit  = 50
	DefaultPluginTimeout = 2 * time.Second
)

// Config is the complete keycalc configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`

	// Keymap maps key specifications to binding targets, e.g.
	// "Ctrl+L" = "AC". An empty target removes a default binding.
	Keymap map[string]string `toml:"keymap" yaml:"keymap"`

	Plugins PluginConfig `toml:"plugins" yaml:"plugins"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output in interactive mode. Empty discards logs
	// while the terminal UI is active.
	File string `toml:"file" yaml:"file"`
}

// DisplayConfig configures the calculator display and engine limits.
type DisplayConfig struct {
	ErrorText    string `toml:"error_text" yaml:"error_text"`
	MaxDigits    int    `toml:"max_digits" yaml:"max_digits"`
	HistoryLimit int    `toml:"history_limit" yaml:"history_limit"`
	// ShowExpression draws the pending operation above the display.
	ShowExpression bool `toml:"show_expression" yaml:"show_expression"`
	// Mouse enables clicking buttons.
	Mouse bool `toml:"mouse" yaml:"mouse"`
}

// ThemeConfig holds hex colors for the terminal UI.
type ThemeConfig struct {
	Background string `toml:"background" yaml:"background"`
	Text       string `toml:"text" yaml:"text"`
	Digit      string `toml:"digit" yaml:"digit"`
	Operator   string `toml:"operator" yaml:"operator"`
	Clear      string `toml:"clear" yaml:"clear"`
}

// PluginConfig lists Lua scripts loaded at startup.
type PluginConfig struct {
	Scripts []string `toml:"scripts" yaml:"scripts"`
	// Timeout bounds each script call, as a Go duration string ("2s").
	Timeout string `toml:"timeout" yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Display: DisplayConfig{
			ErrorText:      DefaultErrorText,
			MaxDigits:      DefaultMaxDigits,
			HistoryLimit:   DefaultHistoryLimit,
			ShowExpression: true,
			Mouse:          true,
		},
		Theme: ThemeConfig{
			Background: "#000000",
			Text:       "#FFFFFF",
			Digit:      "#0B3D91",
			Operator:   "#6650A4",
			Clear:      "#D32F2F",
		},
		Plugins: PluginConfig{
			Timeout: DefaultPluginTimeout.String(),
		},
	}
}

// PluginTimeout returns the parsed plugin timeout, falling back to the
// default when unset or invalid.
func (c *Config) PluginTimeout() time.Duration {
	d, err := time.ParseDuration(c.Plugins.Timeout)
	if err != nil || d <= 0 {
		return DefaultPluginTimeout
	}
	return d
}

// Validate checks all settings and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{
			Path: "logging.level", Value: c.Logging.Level,
			Message: "must be debug, info, warn, or error",
		})
	}

	if c.Display.MaxDigits < 0 {
		errs = append(errs, &ValidationError{
			Path: "display.max_digits", Value: c.Display.MaxDigits,
			Message: "must not be negative",
		})
	}
	if c.Display.HistoryLimit < 0 {
		errs = append(errs, &ValidationError{
			Path: "display.history_limit", Value: c.Display.HistoryLimit,
			Message: "must not be negative",
		})
	}

	colors := []struct {
		path, hex string
	}{
		{"theme.background", c.Theme.Background},
		{"theme.text", c.Theme.Text},
		{"theme.digit", c.Theme.Digit},
		{"theme.operator", c.Theme.Operator},
		{"theme.clear", c.Theme.Clear},
	}
	for _, col := range colors {
		if col.hex == "" {
			continue
		}
		if _, err := core.ColorFromHex(col.hex); err != nil {
			errs = append(errs, &ValidationError{Path: col.path, Value: col.hex, Message: err.Error()})
		}
	}

	if c.Plugins.Timeout != "" {
		if d, err := time.ParseDuration(c.Plugins.Timeout); err != nil || d <= 0 {
			errs = append(errs, &ValidationError{
				Path: "plugins.timeout", Value: c.Plugins.Timeout,
				Message: "must be a positive duration",
			})
		}
	}

	return errors.Join(errs...)
}

// String returns a one-line summary for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf("level=%s max_digits=%d history=%d keymap=%d scripts=%d",
		c.Logging.Level, c.Display.MaxDigits, c.Display.HistoryLimit,
		len(c.Keymap), len(c.Plugins.Scripts))
}
