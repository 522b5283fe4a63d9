// Package config handles loading the optional zeittui configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the per-directory config file name.
const ConfigFilename = ".zeittui.yaml"

// DefaultRefreshInterval is how often the tracking status is re-queried.
const DefaultRefreshInterval = time.Second

// Config represents the .zeittui.yaml configuration file.
type Config struct {
	Zeit ZeitConfig `yaml:"zeit"`
	UI   UIConfig   `yaml:"ui"`
}

// ZeitConfig names the external tool to invoke.
type ZeitConfig struct {
	Command string `yaml:"command"`
}

// UIConfig holds display settings.
type UIConfig struct {
	// RefreshInterval is a Go duration string, e.g. "1s" or "500ms".
	RefreshInterval string `yaml:"refresh_interval"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Zeit: ZeitConfig{Command: "zeit"},
		UI:   UIConfig{RefreshInterval: "1s"},
	}
}

// RefreshInterval parses the configured interval, falling back to the
// default for missing or invalid values.
func (c *Config) RefreshInterval() time.Duration {
	d, err := time.ParseDuration(c.UI.RefreshInterval)
	if err != nil || d <= 0 {
		return DefaultRefreshInterval
	}
	return d
}

// FindConfigFile locates the config file: the current directory first,
// then ~/.config/zeittui/config.yaml. Returns an empty string when
// neither exists.
func FindConfigFile() string {
	if _, err := os.Stat(ConfigFilename); err == nil {
		return ConfigFilename
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	path := filepath.Join(home, ".config", "zeittui", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// LoadFromPath loads configuration from a specific file.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Zeit.Command == "" {
		cfg.Zeit.Command = "zeit"
	}
	return cfg, nil
}

// Load loads the config from the explicit path if given, otherwise from
// the first discovered location. A missing file is not an error; defaults
// apply. An unreadable or malformed file is.
func Load(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = FindConfigFile()
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFromPath(path)
}
