package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
git:
  remote: upstream
templates:
  dirs:
    - /srv/labels/templates
apply:
  config_file: team-labels.toml
  skip_existing: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "upstream", cfg.Remote())
	assert.Equal(t, []string{"/srv/labels/templates"}, cfg.Templates.Dirs)
	assert.Equal(t, "team-labels.toml", cfg.DefaultConfigFile())
	assert.True(t, cfg.Apply.SkipExisting)
}

func TestLoadConfigFromPathMissingFile(t *testing.T) {
	cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadConfigFromPathInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("git: [not a map"), 0o644))

	_, err := LoadConfigFromPath(path)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "origin", cfg.Remote())
	assert.Equal(t, "labels.toml", cfg.DefaultConfigFile())
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		Git:   GitConfig{Remote: "upstream"},
		Apply: ApplyConfig{SkipExisting: true},
	}
	require.NoError(t, cfg.SaveConfigToPath(path))

	loaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
