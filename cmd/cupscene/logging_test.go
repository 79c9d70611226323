package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cupscene/config"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), logDir, logFileName)

	c := setupLogging(false, path, slog.LevelDebug)
	slog.Info("discarded")
	log.Println("discarded")
	require.NoError(t, c.Close())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Cleanup(func() { discardLogs() })
	path := filepath.Join(t.TempDir(), logDir, logFileName)

	c := setupLogging(true, path, slog.LevelDebug)
	slog.Debug("Frame stats", "frame", 1)
	log.Println("plain log line")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Frame stats")
	assert.Contains(t, string(data), "plain log line")
}

func TestSetupLogging_LevelFilters(t *testing.T) {
	t.Cleanup(func() { discardLogs() })
	path := filepath.Join(t.TempDir(), logFileName)

	c := setupLogging(true, path, slog.LevelWarn)
	slog.Info("hidden")
	slog.Warn("shown")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestLogLevelFlag(t *testing.T) {
	var f logLevelFlag
	require.NoError(t, f.Set("debug"))
	assert.Equal(t, slog.LevelDebug, f.value)
	assert.Equal(t, "DEBUG", f.String())
	assert.Error(t, f.Set("loud"))
}

func TestApplyFlags(t *testing.T) {
	t.Cleanup(func() { *particlesFlag, *seedFlag, *fpsFlag = 0, 0, 0 })

	cfg := config.Default()
	*particlesFlag, *seedFlag, *fpsFlag = 12, 42, 30
	require.NoError(t, applyFlags(cfg))
	assert.Equal(t, 12, cfg.Scene.Particles)
	assert.Equal(t, uint64(42), cfg.Scene.Seed)
	assert.Equal(t, 30, cfg.Scene.FPS)

	*fpsFlag = 1000
	assert.ErrorIs(t, applyFlags(cfg), config.ErrInvalid)
}
