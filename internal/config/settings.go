package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFile = "settings.yaml"

// Settings are user preferences read from the settings file at startup
type Settings struct {
	Port        int    `yaml:"port,omitempty"`
	CatalogPath string `yaml:"catalog_path,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
	Headless    bool   `yaml:"headless,omitempty"`
}

// SettingsDir returns the per-user directory holding the settings file.
// KINETICS_CONFIG_DIR overrides the platform default.
func SettingsDir() (string, error) {
	if dir := os.Getenv("KINETICS_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "kinetics-lab"), nil
}

// LoadSettings reads the settings file. A missing file yields empty settings.
func LoadSettings() (*Settings, error) {
	dir, err := SettingsDir()
	if err != nil {
		return &Settings{}, fmt.Errorf("could not determine settings directory: %w", err)
	}
	return ReadSettings(filepath.Join(dir, settingsFile))
}

// ReadSettings reads settings from an explicit path
func ReadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return &Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return &Settings{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	// Relative catalog paths are resolved against the settings directory
	if s.CatalogPath != "" && !filepath.IsAbs(s.CatalogPath) {
		s.CatalogPath = filepath.Join(filepath.Dir(path), s.CatalogPath)
	}
	return &s, nil
}
