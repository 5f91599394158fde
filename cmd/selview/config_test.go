package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/textselect/selectable"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\"): %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selview.toml")
	data := `
highlight = "#ff0000"
columns = 40
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Highlight != "#ff0000" {
		t.Errorf("Highlight = %q, want %q", cfg.Highlight, "#ff0000")
	}
	if cfg.Columns != 40 {
		t.Errorf("Columns = %d, want 40", cfg.Columns)
	}
	// Unset keys keep their defaults.
	if cfg.DoubleClickMs != DefaultConfig().DoubleClickMs {
		t.Errorf("DoubleClickMs = %d, want default %d", cfg.DoubleClickMs, DefaultConfig().DoubleClickMs)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selview.toml")
	if err := os.WriteFile(path, []byte("columns = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted columns = 2")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig accepted a missing file")
	}
}

func TestClickTracker(t *testing.T) {
	tr := newClickTracker(400*time.Millisecond, 1)

	base := time.Unix(1, 0)
	p := selectable.Pt(5, 5)

	if got := tr.recordClick(p, base); got != 1 {
		t.Errorf("first click = %d, want 1", got)
	}
	if got := tr.recordClick(p, base.Add(200*time.Millisecond)); got != 2 {
		t.Errorf("second click = %d, want 2", got)
	}
	if got := tr.recordClick(p, base.Add(400*time.Millisecond)); got != 3 {
		t.Errorf("third click = %d, want 3", got)
	}
	// A fourth click wraps back to a fresh single click.
	if got := tr.recordClick(p, base.Add(600*time.Millisecond)); got != 1 {
		t.Errorf("fourth click = %d, want 1", got)
	}

	// Too far away breaks the sequence.
	tr.reset()
	tr.recordClick(p, base)
	if got := tr.recordClick(selectable.Pt(10, 10), base.Add(100*time.Millisecond)); got != 1 {
		t.Errorf("distant click = %d, want 1", got)
	}
}
