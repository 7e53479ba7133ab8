package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/asciicubes"
)

func runConfigCommand(t *testing.T, args ...string) (*asciicubes.Config, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"config"}, args...))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return nil, err
	}
	cfg := asciicubes.DefaultConfig()
	require.NoError(t, toml.Unmarshal(out.Bytes(), cfg))
	return cfg, nil
}

func TestConfigCommandDefaults(t *testing.T) {
	cfg, err := runConfigCommand(t)
	require.NoError(t, err)
	assert.Equal(t, asciicubes.DefaultConfig(), cfg)
}

func TestConfigCommandFlagOverrides(t *testing.T) {
	cfg, err := runConfigCommand(t,
		"--width", "100",
		"--height", "50",
		"--projection", "perspective",
		"--cubes", "7",
		"--collisions",
		"--no-color",
		"--interval", "50ms",
		"--seed", "5",
	)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.ScreenWidth)
	assert.Equal(t, 50, cfg.ScreenHeight)
	assert.Equal(t, asciicubes.ProjectionPerspective, cfg.Projection)
	assert.Equal(t, 7, cfg.CubeCount)
	assert.True(t, cfg.Collisions)
	assert.False(t, cfg.ColorEnabled)
	assert.Equal(t, "50ms", cfg.FrameInterval.String())
	assert.Equal(t, int64(5), cfg.Seed)
}

func TestConfigCommandFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes.toml")
	require.NoError(t, os.WriteFile(path, []byte("screen_width = 33\ncube_count = 9\n"), 0o644))

	cfg, err := runConfigCommand(t, "--config", path, "--cubes", "2")
	require.NoError(t, err)
	assert.Equal(t, 33, cfg.ScreenWidth)
	assert.Equal(t, 2, cfg.CubeCount, "flags win over the file")
}

func TestConfigCommandRejectsBadInput(t *testing.T) {
	testCases := [][]string{
		{"--projection", "fisheye"},
		{"--width", "0"},
		{"--interval", "soon"},
		{"--config", "does/not/exist.toml"},
	}
	for _, args := range testCases {
		_, err := runConfigCommand(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}

func TestRootRejectsUnknownDisplay(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--display", "hologram", "--frames", "1"})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorContains(t, err, "unknown display \"hologram\"")
}

func TestResolveConfigChecksDisplayBeforeFile(t *testing.T) {
	cmd := newRootCommand()
	opts := &options{display: "hologram", configPath: "does/not/exist.toml"}
	_, err := resolveConfig(cmd, opts)
	assert.ErrorContains(t, err, "unknown display")

	opts.display = displayANSI
	_, err = resolveConfig(cmd, opts)
	assert.ErrorContains(t, err, "could not open config")
}
