package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := loadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "natded", cfg.Name)
	assert.True(t, cfg.Color)
	assert.Empty(t, cfg.Output)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	t.Parallel()
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "natded.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: demo\ncolor: false\noutput: out.txt\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.False(t, cfg.Color)
	assert.Equal(t, "out.txt", cfg.Output)
}

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".natded.yaml")
	require.NoError(t, initConfigurationFile(path))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}
