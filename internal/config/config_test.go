package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gandalfthegui/dotenv/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "config.yaml", `files:
  - .env
  - .env.local
log_level: debug
options:
  overwrite: false
  strip_quotes: false
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".env", ".env.local"}, cfg.Files)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Options.Overwrite)
	assert.False(t, cfg.Options.StripQuotes)
	// Fields not mentioned keep their defaults.
	assert.True(t, cfg.Options.TrimWhitespace)
}

func TestLoadTOML(t *testing.T) {
	path := write(t, "config.toml", `files = ["prod.env"]

[options]
trim_whitespace = false
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod.env"}, cfg.Files)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Options.TrimWhitespace)
	assert.True(t, cfg.Options.Overwrite)
}

func TestLoadEmptyFilesFallsBack(t *testing.T) {
	path := write(t, "config.yaml", "files: []\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".env"}, cfg.Files)
}

func TestLoadInvalid(t *testing.T) {
	path := write(t, "config.yaml", "files: [unterminated\n")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.yaml", filepath.Base(config.DefaultPath()))
	assert.Equal(t, "dotenv", filepath.Base(filepath.Dir(config.DefaultPath())))
}
