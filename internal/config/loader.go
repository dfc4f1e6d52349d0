package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const dotsFile = "dots.yaml"

// LoadDots loads Dots & Boxes configuration.
// Search order: customPath -> ~/.dots/configs/dots.yaml -> ./configs/dots.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it
// cares about. Only an explicit customPath reports read, parse or
// validation errors; files found on the search path are skipped when broken.
func LoadDots(customPath string) (DotsConfig, error) {
	if customPath != "" {
		cfg, err := readDots(customPath)
		if err != nil {
			return DefaultDotsConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(dotsFile); userCfgPath != "" {
		if cfg, err := readDots(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readDots(filepath.Join("configs", dotsFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultDotsConfig()
	if err := yaml.Unmarshal(defaultDotsYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultDotsConfig(), nil
	}
	return cfg, nil
}

func readDots(path string) (DotsConfig, error) {
	cfg := DefaultDotsConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// SaveDots writes the configuration as YAML, creating parent directories.
func SaveDots(path string, cfg DotsConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// UserDir returns ~/.dots, or an empty string if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dots")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserConfigPath returns ~/.dots/configs/dots.yaml, the first file LoadDots
// looks for, or an empty string if home is unavailable.
func UserConfigPath() string {
	return userConfigPath(dotsFile)
}
