// Package config provides YAML-based board configuration, grid presets and
// environment overrides for the dots platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-dots/internal/games/dots/board"
)

// Grid size limits. Larger grids do not fit a usual terminal.
const (
	MinGridSize = 2
	MaxGridSize = 16
)

// DotsConfig contains all configuration for the Dots & Boxes game.
type DotsConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Surface SurfaceConfig `yaml:"surface"`
	Release string        `yaml:"release"` // "nearest" or "contain"
}

// GridConfig defines the grid dimensions, counted in points.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SurfaceConfig defines the pixel geometry of the drawing surface.
type SurfaceConfig struct {
	Spacing float64 `yaml:"spacing"` // pixels between neighbouring points
	Radius  float64 `yaml:"radius"`  // point radius in pixels
	Aspect  float64 `yaml:"aspect"`  // pixels per terminal row
}

// Validate checks the configuration and reports the first problem found.
func (c DotsConfig) Validate() error {
	if c.Grid.Width < MinGridSize || c.Grid.Width > MaxGridSize {
		return fmt.Errorf("config: grid width must be in [%d, %d], got %d", MinGridSize, MaxGridSize, c.Grid.Width)
	}
	if c.Grid.Height < MinGridSize || c.Grid.Height > MaxGridSize {
		return fmt.Errorf("config: grid height must be in [%d, %d], got %d", MinGridSize, MaxGridSize, c.Grid.Height)
	}
	if c.Surface.Spacing <= 0 {
		return fmt.Errorf("config: surface spacing must be positive, got %v", c.Surface.Spacing)
	}
	if c.Surface.Radius <= 0 || c.Surface.Radius*2 > c.Surface.Spacing {
		return fmt.Errorf("config: surface radius must be in (0, spacing/2], got %v", c.Surface.Radius)
	}
	if c.Surface.Aspect <= 0 {
		return fmt.Errorf("config: surface aspect must be positive, got %v", c.Surface.Aspect)
	}
	if _, err := board.ParseReleasePolicy(c.Release); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BoardConfig converts the configuration into a board configuration.
func (c DotsConfig) BoardConfig() (board.Config, error) {
	if err := c.Validate(); err != nil {
		return board.Config{}, err
	}
	policy, _ := board.ParseReleasePolicy(c.Release)
	return board.Config{
		Width:   c.Grid.Width,
		Height:  c.Grid.Height,
		Spacing: c.Surface.Spacing,
		Radius:  c.Surface.Radius,
		Release: policy,
	}, nil
}
