package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/Aman-CERP/fsindex/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 64, cfg.Buckets)
	assert.Contains(t, cfg.Walk.Exclude, ".git")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromRoot(t *testing.T) {
	root := t.TempDir()
	data := []byte("version: 1\nbuckets: 128\nwalk:\n  exclude: [node_modules]\n  follow_symlinks: true\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), data, 0o644))

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Buckets)
	assert.Equal(t, []string{"node_modules"}, cfg.Walk.Exclude)
	assert.True(t, cfg.Walk.FollowSymlinks)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("buckets: 32\n"), 0o644))

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Buckets)
	// Unset keys keep their defaults.
	assert.Contains(t, cfg.Walk.Exclude, ".git")
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buckets: 7\n"), 0o644))

	cfg, err := Load(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Buckets)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errs.ErrCodeConfigInvalid, errs.GetCode(err))
}

func TestLoadMalformedYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("buckets: [not a number\n"), 0o644))

	_, err := Load(root, "")
	require.Error(t, err)
	assert.Equal(t, errs.ErrCodeConfigInvalid, errs.GetCode(err))
}

func TestEnvOverrides(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("buckets: 16\n"), 0o644))

	t.Setenv("FSINDEX_BUCKETS", "256")
	t.Setenv("FSINDEX_LOG_LEVEL", "warn")

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Buckets, "env beats file")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "zero buckets", mutate: func(c *Config) { c.Buckets = 0 }, wantErr: true},
		{name: "negative buckets", mutate: func(c *Config) { c.Buckets = -1 }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "warning alias", mutate: func(c *Config) { c.Log.Level = "warning" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errs.ErrCodeConfigInvalid, errs.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
