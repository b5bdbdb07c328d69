// Package config loads the optional spidershell YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable consulted when --config is unset.
const EnvConfig = "SPIDERSHELL_CONFIG"

// Config holds user settings for the shell.
type Config struct {
	// Banner prints the startup banner (default: true)
	Banner bool `yaml:"banner"`

	// HistoryFile is where the line editor keeps history; empty disables it
	HistoryFile string `yaml:"history_file"`

	// Variables are extra presets added after PI and E
	Variables map[string]float64 `yaml:"variables"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Banner: true,
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.HistoryFile = ExpandHome(cfg.HistoryFile)
	return cfg, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
