// Package config loads inkwell configuration from TOML files with
// environment variable overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "INKWELL_"

// Config is the application configuration.
type Config struct {
	History HistoryConfig `toml:"history"`
	Canvas  CanvasConfig  `toml:"canvas"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

// HistoryConfig configures the undo/redo manager.
type HistoryConfig struct {
	// MaxEntries bounds the undo stack; oldest entries are trimmed.
	MaxEntries int `toml:"max_entries"`
}

// CanvasConfig configures the drawing surface.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// DefaultColor is the hex color assigned to shapes created without an
	// explicit color (e.g. from scripts).
	DefaultColor string `toml:"default_color"`
}

// StorageConfig configures the document store.
type StorageConfig struct {
	// Path is the Badger database directory. Empty means the XDG default.
	Path string `toml:"path"`
	// InMemory runs the store without touching disk.
	InMemory bool `toml:"in_memory"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		History: HistoryConfig{MaxEntries: 1000},
		Canvas: CanvasConfig{
			Width:        1920,
			Height:       1080,
			DefaultColor: "#000000",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from path, layered over the defaults and under
// environment overrides. A missing file is not an error; the defaults are
// used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays INKWELL_* environment variables onto the config.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "HISTORY_MAX_ENTRIES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.History.MaxEntries = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "DEFAULT_COLOR"); ok {
		c.Canvas.DefaultColor = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "STORAGE_PATH"); ok {
		c.Storage.Path = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries must not be negative, got %d", c.History.MaxEntries)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := colorful.Hex(c.Canvas.DefaultColor); err != nil {
		return fmt.Errorf("canvas.default_color %q: %w", c.Canvas.DefaultColor, err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

// DefaultColor returns the parsed default shape color.
// Validate must have accepted the config first.
func (c Config) DefaultColor() colorful.Color {
	col, err := colorful.Hex(c.Canvas.DefaultColor)
	if err != nil {
		return colorful.Color{}
	}
	return col
}

// SlogLevel maps the configured level to a slog level.
// Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
