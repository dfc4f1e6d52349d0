package config

import (
	"fmt"
	"strings"
)

// Preset represents a named grid size.
type Preset string

const (
	PresetSmall  Preset = "small"
	PresetNormal Preset = "normal"
	PresetLarge  Preset = "large"
	PresetCustom Preset = "custom" // keep the configured grid
)

// PresetInfo describes a preset for menus and listings.
type PresetInfo struct {
	Preset      Preset
	Width       int
	Height      int
	Description string
}

var presets = []PresetInfo{
	{PresetSmall, 3, 3, "4 squares, a quick round"},
	{PresetNormal, 5, 4, "12 squares"},
	{PresetLarge, 8, 6, "35 squares, needs a wide terminal"},
	{PresetCustom, 0, 0, "grid from the config file"},
}

// Presets returns every preset in menu order.
func Presets() []PresetInfo {
	return append([]PresetInfo(nil), presets...)
}

// ParsePreset converts a preset name. An empty name selects PresetCustom.
func ParsePreset(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PresetCustom, nil
	}
	for _, p := range presets {
		if string(p.Preset) == name {
			return p.Preset, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", name)
}

// ApplyDotsPreset modifies the config grid based on a preset.
// PresetCustom and unknown presets leave the config untouched.
func ApplyDotsPreset(cfg *DotsConfig, preset Preset) {
	for _, p := range presets {
		if p.Preset == preset && p.Width > 0 {
			cfg.Grid.Width = p.Width
			cfg.Grid.Height = p.Height
			return
		}
	}
}
