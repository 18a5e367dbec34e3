package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the user-adjustable settings: which editor to launch
// for result rows and the default extension sets per mode.
type Config struct {
	Editor      string   `yaml:"editor"`
	EditorArgs  []string `yaml:"editor_args"`
	SearchExts  []string `yaml:"search_exts"`
	CompareExts []string `yaml:"compare_exts"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SearchExts:  []string{"sas", "log", "txt"},
		CompareExts: []string{"pdf", "lst", "txt"},
	}
}

// Dir returns the qcheck config directory, creating it if needed.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", "qcheck")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return configDir, nil
}

// Path returns the location of the config file.
func Path() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Load reads the config file, falling back to defaults when it does
// not exist. Extension lists are normalized to lowercase without dots.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and parses a config file at an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.SearchExts = cleanExts(cfg.SearchExts, Default().SearchExts)
	cfg.CompareExts = cleanExts(cfg.CompareExts, Default().CompareExts)
	return cfg, nil
}

// cleanExts lowercases entries and strips leading dots and blanks,
// falling back when nothing usable remains.
func cleanExts(exts, fallback []string) []string {
	cleaned := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(strings.ToLower(ext)), ".")
		if ext != "" {
			cleaned = append(cleaned, ext)
		}
	}
	if len(cleaned) == 0 {
		return fallback
	}
	return cleaned
}
