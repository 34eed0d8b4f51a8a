// Package config loads fsindex configuration from YAML with environment
// variable overrides. Precedence: defaults, then config file, then env.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	errs "github.com/Aman-CERP/fsindex/internal/errors"
)

// ConfigFileName is the per-directory config file looked up next to the
// indexed root.
const ConfigFileName = ".fsindex.yaml"

// Config represents the complete fsindex configuration.
type Config struct {
	Version int        `yaml:"version" json:"version"`
	Buckets int        `yaml:"buckets" json:"buckets"`
	Walk    WalkConfig `yaml:"walk" json:"walk"`
	Log     LogConfig  `yaml:"log" json:"log"`
}

// WalkConfig configures the subtree walk.
type WalkConfig struct {
	// Exclude lists entry names to skip (matched against base names,
	// filepath.Match patterns allowed).
	Exclude []string `yaml:"exclude" json:"exclude"`
	// FollowSymlinks resolves symlinks when reading metadata.
	FollowSymlinks bool `yaml:"follow_symlinks" json:"follow_symlinks"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" json:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Buckets: 64,
		Walk: WalkConfig{
			Exclude: []string{".git"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration for the given root directory.
// If explicitPath is non-empty it must exist; otherwise <root>/.fsindex.yaml
// is used when present, and defaults apply when it is not.
// Environment overrides are applied last.
func Load(root, explicitPath string) (*Config, error) {
	cfg := DefaultConfig()

	path := explicitPath
	if path == "" {
		candidate := filepath.Join(root, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.ConfigError(fmt.Sprintf("failed to read config file %s", path), err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errs.ConfigError(fmt.Sprintf("failed to parse config file %s", path), err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies FSINDEX_* environment variables, which take
// precedence over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FSINDEX_BUCKETS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Buckets = n
		}
	}
	if v := os.Getenv("FSINDEX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Buckets < 1 {
		return errs.ConfigError(
			fmt.Sprintf("buckets must be at least 1, got %d", c.Buckets), nil)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errs.ConfigError(
			fmt.Sprintf("unknown log level %q", c.Log.Level), nil)
	}
	return nil
}
