package config

import (
	"os"
	"path/filepath"
	"testing"

	"gridlayout/pkg/grid"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
columns = 24
row_height = 40.0
container_width = 1920.0
direction = "rtl"
use_transforms = false
use_percent = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Columns != 24 || cfg.RowHeight != 40 || cfg.ContainerWidth != 1920 {
		t.Errorf("geometry = %+v", cfg)
	}
	if cfg.Dir() != grid.RTL {
		t.Errorf("Dir = %v, want RTL", cfg.Dir())
	}
	if cfg.UseTransforms || !cfg.UsePercent {
		t.Errorf("flags = %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.MarginX != 10 || cfg.MaxRows != 100 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_ClampsOutOfRange(t *testing.T) {
	path := writeConfig(t, `
columns = 0
row_height = -5.0
max_rows = -1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Columns != 1 {
		t.Errorf("Columns = %d, want 1", cfg.Columns)
	}
	if cfg.RowHeight != 30 {
		t.Errorf("RowHeight = %f, want 30", cfg.RowHeight)
	}
	if cfg.MaxRows != 1 {
		t.Errorf("MaxRows = %d, want 1", cfg.MaxRows)
	}
}

func TestLoad_RejectsBadDirection(t *testing.T) {
	path := writeConfig(t, `direction = "up"`)
	if _, err := Load(path); err == nil {
		t.Error("bad direction accepted")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestGridConversion(t *testing.T) {
	cfg := Default()
	g := cfg.Grid()
	if g.Columns != cfg.Columns || g.RowHeight != cfg.RowHeight ||
		g.ContainerWidth != cfg.ContainerWidth || g.MaxRows != cfg.MaxRows {
		t.Errorf("Grid() = %+v", g)
	}
}
