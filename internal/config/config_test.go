package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/loader"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, uint64(5381), cfg.SimHash.Seed)
	assert.Equal(t, loader.DefaultEncodings(), cfg.Loader.Encodings)
	assert.Equal(t, 0.8, cfg.SimHash.Thresholds.High)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
simhash:
  seed: 7
  thresholds:
    high: 0.9
    moderate: 0.6
    light: 0.2
loader:
  encodings: [utf-8, latin-1]
report:
  format: json
server:
  port: 9090
  read_timeout: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.SimHash.Seed)
	assert.Equal(t, 0.9, cfg.SimHash.Thresholds.High)
	assert.Equal(t, []string{"utf-8", "latin-1"}, cfg.Loader.Encodings)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)

	// untouched sections keep their defaults
	assert.Equal(t, Default().SimHash.TokenPattern, cfg.SimHash.TokenPattern)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "simhash: [1, 2"},
		{"bad thresholds", "simhash:\n  thresholds: {high: 0.2, moderate: 0.5, light: 0.8}\n"},
		{"bad encoding", "loader:\n  encodings: [ebcdic]\n"},
		{"bad format", "report:\n  format: pdf\n"},
		{"bad pattern", "simhash:\n  token_pattern: \"[\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
