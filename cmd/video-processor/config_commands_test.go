package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-processor/internal/config"
)

func TestConfigInitAndValidate(t *testing.T) {
	isolateEnv(t)
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	stdout, _, err := runCLI(t, "config", "init", "--path", target)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote default profile to "+target)

	loaded, err := config.Load(target)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)

	_, _, err = runCLI(t, "config", "init", "--path", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runCLI(t, "config", "init", "--path", target, "--overwrite")
	require.NoError(t, err)

	stdout, _, err = runCLI(t, "--config", target, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Profile path: "+target)
	assert.Contains(t, stdout, "Profile valid")
	assert.NotContains(t, stdout, "defaults were used")
}

func TestConfigInitUsesConfigEnv(t *testing.T) {
	isolateEnv(t)
	target := filepath.Join(t.TempDir(), "profile.yaml")
	t.Setenv("VP_CONFIG", target)

	stdout, _, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, target)

	loaded, err := config.Load(target)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestConfigInitIgnoresBrokenProfile(t *testing.T) {
	isolateEnv(t)
	broken := writeProfile(t, "config.toml", "colour = \"red\"\n")

	_, _, err := runCLI(t, "--config", broken, "config", "init", "--overwrite")
	require.NoError(t, err, "init replaces a profile that no longer loads")

	_, err = config.Load(broken)
	require.NoError(t, err)
}

func TestConfigValidate(t *testing.T) {
	isolateEnv(t)

	missing := filepath.Join(t.TempDir(), "config.toml")
	stdout, _, err := runCLI(t, "--config", missing, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "defaults were used")

	invalid := writeProfile(t, "config.toml", "[defaults]\nvolume_percent = 7\n")
	_, _, err = runCLI(t, "--config", invalid, "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidProfile)
}
