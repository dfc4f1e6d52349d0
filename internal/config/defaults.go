package config

import (
	_ "embed"
)

//go:embed defaults/dots.yaml
var defaultDotsYAML []byte

// DefaultDotsConfig returns the default Dots & Boxes configuration.
func DefaultDotsConfig() DotsConfig {
	return DotsConfig{
		Grid: GridConfig{
			Width:  5,
			Height: 4,
		},
		Surface: SurfaceConfig{
			Spacing: 6,
			Radius:  1.5,
			Aspect:  2,
		},
		Release: "nearest",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDotsYAML
}
