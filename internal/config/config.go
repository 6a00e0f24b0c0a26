// Package config holds goifs settings read from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is read from the working directory when --config is not given
const DefaultFile = "goifs.toml"

// Config is the root of the TOML document
type Config struct {
	Log      Log      `toml:"log"`
	Convert  Convert  `toml:"convert"`
	Preview  Preview  `toml:"preview"`
	OpenSCAD OpenSCAD `toml:"openscad"`
}

// Log configures the process logger
type Log struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`
}

// Convert holds defaults of the convert command
type Convert struct {
	Binary        bool `toml:"binary"`
	AllowPolygons bool `toml:"allow_polygons"`
	// DebounceMS is the quiet period before a watched file is reconverted
	DebounceMS int `toml:"debounce_ms"`
}

// Preview holds defaults of the preview command
type Preview struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Yaw and Pitch are in degrees
	Yaw   float64 `toml:"yaw"`
	Pitch float64 `toml:"pitch"`
}

// OpenSCAD locates the renderer used for .scad inputs
type OpenSCAD struct {
	// Binary is a name on PATH or a path; empty means "openscad"
	Binary string `toml:"binary"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Log:     Log{Level: "info"},
		Convert: Convert{DebounceMS: 500},
		Preview: Preview{Width: 800, Height: 600, Yaw: 45, Pitch: 30},
	}
}

// Load reads path over the defaults. When path is empty DefaultFile is tried
// and a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Convert.DebounceMS < 0 {
		return fmt.Errorf("convert.debounce_ms must not be negative, got %d", c.Convert.DebounceMS)
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("preview size must be positive, got %dx%d", c.Preview.Width, c.Preview.Height)
	}
	return nil
}

// SlogLevel parses Level
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", l.Level)
	}
	return level, nil
}

// Debounce returns DebounceMS as a duration
func (c Convert) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}
