// Package config loads grid engine configuration from TOML files and
// watches them for changes.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"gridlayout/pkg/grid"
)

// Config is the file-level configuration for a grid container and its
// rendering flags.
type Config struct {
	Columns        int     `toml:"columns"`
	RowHeight      float64 `toml:"row_height"`
	MarginX        float64 `toml:"margin_x"`
	MarginY        float64 `toml:"margin_y"`
	ContainerWidth float64 `toml:"container_width"`
	MaxRows        int     `toml:"max_rows"`
	Direction      string  `toml:"direction"` // "ltr" or "rtl"
	UseTransforms  bool    `toml:"use_transforms"`
	UsePercent     bool    `toml:"use_percent"`
}

// Default returns the configuration used when no file is given: the
// conventional 12-column grid.
func Default() Config {
	return Config{
		Columns:        12,
		RowHeight:      30,
		MarginX:        10,
		MarginY:        10,
		ContainerWidth: 1200,
		MaxRows:        100,
		Direction:      "ltr",
		UseTransforms:  true,
	}
}

// Load reads a TOML config file over the defaults and clamps it.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	Clamp(&cfg)
	if cfg.Direction != "ltr" && cfg.Direction != "rtl" {
		return Config{}, fmt.Errorf("config: direction must be \"ltr\" or \"rtl\", got %q", cfg.Direction)
	}
	return cfg, nil
}

// Clamp pulls out-of-range values back to usable ones instead of
// failing: a config file edit mid-session should degrade, not crash.
func Clamp(cfg *Config) {
	if cfg.Columns < 1 {
		cfg.Columns = 1
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = Default().RowHeight
	}
	if cfg.MarginX < 0 {
		cfg.MarginX = 0
	}
	if cfg.MarginY < 0 {
		cfg.MarginY = 0
	}
	if cfg.ContainerWidth <= 0 {
		cfg.ContainerWidth = Default().ContainerWidth
	}
	if cfg.MaxRows < 1 {
		cfg.MaxRows = 1
	}
}

// Grid returns the geometry part of the config.
func (c Config) Grid() grid.Config {
	return grid.Config{
		Columns:        c.Columns,
		RowHeight:      c.RowHeight,
		MarginX:        c.MarginX,
		MarginY:        c.MarginY,
		ContainerWidth: c.ContainerWidth,
		MaxRows:        c.MaxRows,
	}
}

// Dir returns the configured direction.
func (c Config) Dir() grid.Direction {
	if c.Direction == "rtl" {
		return grid.RTL
	}
	return grid.LTR
}
