// Package config loads tool configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tool configuration.
type Config struct {
	Profile   ProfileConfig   `toml:"profile"`
	Log       LogConfig       `toml:"log"`
	Joystick  JoystickConfig  `toml:"joystick"`
	Inspector InspectorConfig `toml:"inspector"`
}

// ProfileConfig configures the action profile source.
type ProfileConfig struct {
	// Path is the action profile document.
	Path string `toml:"path"`
	// Watch enables reloading when the profile changes on disk.
	Watch bool `toml:"watch"`
	// DebounceMS is the reload debounce in milliseconds.
	DebounceMS int `toml:"debounce_ms"`
}

// Debounce returns the reload debounce as a duration.
func (c ProfileConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// LogConfig configures diagnostics.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File receives log output; empty logs to stderr.
	File string `toml:"file"`
}

// JoystickConfig selects the joystick layout.
type JoystickConfig struct {
	// Catalog is an optional YAML layout catalog file. Empty uses the
	// built-in layouts.
	Catalog string `toml:"catalog"`
	// Layout names the layout to use.
	Layout string `toml:"layout"`
}

// InspectorConfig configures the interactive inspector.
type InspectorConfig struct {
	// TickMS is the poll interval in milliseconds.
	TickMS int `toml:"tick_ms"`
}

// Tick returns the poll interval as a duration.
func (c InspectorConfig) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Profile: ProfileConfig{
			Path:       "actions.xml",
			Watch:      true,
			DebounceMS: 200,
		},
		Log: LogConfig{
			Level: "info",
		},
		Joystick: JoystickConfig{
			Layout: "generic",
		},
		Inspector: InspectorConfig{
			TickMS: 16,
		},
	}
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a configuration field with an unusable
// value.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config field %s = %v: %s", e.Field, e.Value, e.Message)
}

// Load reads the configuration file at path, filling unset fields from
// defaults. A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks field values. Unknown log levels and non-positive
// intervals are rejected rather than silently corrected.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: "must be debug, info, warn, or error",
		}
	}

	if c.Profile.Path == "" {
		return &ValidationError{
			Field:   "profile.path",
			Value:   c.Profile.Path,
			Message: "must not be empty",
		}
	}
	if c.Profile.DebounceMS < 0 {
		return &ValidationError{
			Field:   "profile.debounce_ms",
			Value:   c.Profile.DebounceMS,
			Message: "must not be negative",
		}
	}

	if c.Inspector.TickMS <= 0 {
		return &ValidationError{
			Field:   "inspector.tick_ms",
			Value:   c.Inspector.TickMS,
			Message: "must be positive",
		}
	}

	return nil
}
