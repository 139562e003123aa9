// Package config loads session defaults from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable session defaults. Zoom limits are intentionally
// absent: they are behavioral constants of the viewport, not preferences.
type Config struct {
	// UndoLimit bounds the snapshot undo stack.
	UndoLimit int `toml:"undo_limit"`

	// CommandCap bounds the structural command log.
	CommandCap int `toml:"command_cap"`

	// CoalesceWindowMs merges consecutive same-layer draw commands closer
	// together than this.
	CoalesceWindowMs float64 `toml:"coalesce_window_ms"`

	// PenSize and EraserSize are tool base sizes in drawing pixels.
	PenSize    float64 `toml:"pen_size"`
	EraserSize float64 `toml:"eraser_size"`

	// Background is the theme background as a hex color.
	Background string `toml:"background"`

	// Color is the initial pen color as a hex color.
	Color string `toml:"color"`

	// Rulers enables the measurement ruler overlay.
	Rulers bool `toml:"rulers"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		UndoLimit:        30,
		CommandCap:       50,
		CoalesceWindowMs: 1000,
		PenSize:          4,
		EraserSize:       24,
		Background:       "#ffffff",
		Color:            "#000000",
		Rulers:           false,
	}
}

// Load reads a TOML config file over the defaults, so absent keys keep
// their built-in values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
