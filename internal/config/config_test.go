package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.UndoLimit != 30 {
		t.Errorf("UndoLimit = %d, want 30", cfg.UndoLimit)
	}
	if cfg.CommandCap != 50 {
		t.Errorf("CommandCap = %d, want 50", cfg.CommandCap)
	}
	if cfg.CoalesceWindowMs != 1000 {
		t.Errorf("CoalesceWindowMs = %v, want 1000", cfg.CoalesceWindowMs)
	}
	if cfg.Background != "#ffffff" || cfg.Color != "#000000" {
		t.Errorf("colors = %q/%q, want #ffffff/#000000", cfg.Background, cfg.Color)
	}
}

// TestLoadPartialOverride verifies absent keys keep their defaults.
func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thicklines.toml")
	data := "undo_limit = 12\npen_size = 7.5\nbackground = \"#1e1e1e\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UndoLimit != 12 {
		t.Errorf("UndoLimit = %d, want 12", cfg.UndoLimit)
	}
	if cfg.PenSize != 7.5 {
		t.Errorf("PenSize = %v, want 7.5", cfg.PenSize)
	}
	if cfg.Background != "#1e1e1e" {
		t.Errorf("Background = %q, want #1e1e1e", cfg.Background)
	}
	// Untouched keys keep defaults.
	if cfg.CommandCap != 50 || cfg.EraserSize != 24 {
		t.Errorf("defaults lost: CommandCap=%d EraserSize=%v", cfg.CommandCap, cfg.EraserSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("missing file loaded without error")
	}
	// The returned config is still usable.
	if cfg.UndoLimit != 30 {
		t.Errorf("UndoLimit = %d, want default 30", cfg.UndoLimit)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("undo_limit = = 3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed file loaded without error")
	}
}
