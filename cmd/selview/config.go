package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the demo's settings.
type Config struct {
	// Highlight is the selection highlight color as a hex string.
	Highlight string `toml:"highlight"`
	// HandleColor is the selection handle color as a hex string.
	HandleColor string `toml:"handle_color"`
	// Columns is the wrap width of each paragraph in cells.
	Columns int `toml:"columns"`
	// DoubleClickMs is the multi-click window in milliseconds.
	DoubleClickMs int `toml:"double_click_ms"`
	// ClickSlop is the maximum cell distance between clicks of one
	// sequence.
	ClickSlop int `toml:"click_slop"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Highlight:     "#3a6ea5",
		HandleColor:   "#e8a33d",
		Columns:       56,
		DoubleClickMs: 400,
		ClickSlop:     1,
	}
}

// LoadConfig reads settings from a TOML file, layered over the
// defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Columns < 8 {
		return cfg, fmt.Errorf("columns must be at least 8, got %d", cfg.Columns)
	}
	if cfg.DoubleClickMs <= 0 {
		return cfg, fmt.Errorf("double_click_ms must be positive, got %d", cfg.DoubleClickMs)
	}
	return cfg, nil
}
