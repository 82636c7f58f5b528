package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, []string{"q", "ctrl+c"}, cfg.Keys.Quit)
	assert.Equal(t, []string{"j", "down"}, cfg.Keys.Down)
	assert.Equal(t, []string{"enter"}, cfg.Keys.Open)
	assert.Equal(t, []string{"backspace"}, cfg.Keys.Parent)
	assert.False(t, cfg.Settings.ShowHidden)
	assert.NotEmpty(t, cfg.Theme.Directory)
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
keys:
  quit: ["x"]
  down: ["n"]
theme:
  header: "201"
settings:
  show_hidden: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	// Named actions are remapped, the rest keep their defaults.
	assert.Equal(t, []string{"x"}, cfg.Keys.Quit)
	assert.Equal(t, []string{"n"}, cfg.Keys.Down)
	assert.Equal(t, []string{"k", "up"}, cfg.Keys.Up)
	assert.Equal(t, []string{"r"}, cfg.Keys.Refresh)

	assert.Equal(t, "201", cfg.Theme.Header)
	assert.Equal(t, New().Theme.Directory, cfg.Theme.Directory)

	assert.True(t, cfg.Settings.ShowHidden)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keys: ["), 0o644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadConfigFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, New().Keys, cfg.Keys)
}
