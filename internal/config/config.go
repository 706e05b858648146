// Package config loads gridtool settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level structure of gridtool.yaml.
type Config struct {
	// Logging configures the default slog logger.
	Logging LoggingConfig `yaml:"logging"`
	// Parse controls how input files become grids.
	Parse ParseConfig `yaml:"parse"`
	// Search sets defaults for region queries.
	Search SearchConfig `yaml:"search"`
	// Render sets defaults for PNG output.
	Render RenderConfig `yaml:"render"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path; empty means stderr.
	Path string `yaml:"path"`
}

// ParseConfig controls tokenization of input files.
type ParseConfig struct {
	// RowSeparator splits the input into rows.
	RowSeparator string `yaml:"row_separator"`
	// ColumnSeparator splits a row into cells; empty means one cell per character.
	ColumnSeparator string `yaml:"column_separator"`
}

// SearchConfig holds region query defaults.
type SearchConfig struct {
	// Diagonals makes regions 8-connected instead of 4-connected.
	Diagonals bool `yaml:"diagonals"`
}

// RenderConfig holds image output defaults.
type RenderConfig struct {
	// CellSize is the pixel edge length of one cell.
	CellSize int `yaml:"cell_size"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Parse:   ParseConfig{RowSeparator: "\n"},
		Render:  RenderConfig{CellSize: 8},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Parse.RowSeparator == "" {
		return fmt.Errorf("%w: parse.row_separator must not be empty", ErrInvalidConfig)
	}
	if c.Render.CellSize <= 0 {
		return fmt.Errorf("%w: render.cell_size must be positive, got %d", ErrInvalidConfig, c.Render.CellSize)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}
