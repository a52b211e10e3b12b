//go:build !js

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playground/internal/config"
)

func TestRunWritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.yaml")
	require.NoError(t, run(path, false, nil))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRunRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hud: true\n"), 0o644))

	err := run(path, false, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-force")

	require.NoError(t, run(path, true, nil))
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.HUD)
}

func TestRunStdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run("-", false, &buf))
	assert.Contains(t, buf.String(), "speed: 300")
}
