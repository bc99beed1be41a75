package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "App", cfg.DefaultEntry)
	assert.Equal(t, `shell:AppsFolder\`, cfg.ShellPrefix)
	assert.Empty(t, cfg.Backend)
	if runtime.GOOS == "windows" {
		assert.Equal(t, "explorer.exe", cfg.ShellCommand)
	} else {
		assert.Equal(t, "gtk-launch", cfg.ShellCommand)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FOCUS_LAUNCHER_DEBUG", "true")
	t.Setenv("FOCUS_LAUNCHER_LOG_FILE", "/tmp/focus.log")
	t.Setenv("FOCUS_LAUNCHER_DEFAULT_ENTRY", "Main")
	t.Setenv("FOCUS_LAUNCHER_SHELL_COMMAND", "launcher")
	t.Setenv("FOCUS_LAUNCHER_BACKEND", "x11")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/focus.log", cfg.LogFile)
	assert.Equal(t, "Main", cfg.DefaultEntry)
	assert.Equal(t, "launcher", cfg.ShellCommand)
	assert.Equal(t, "x11", cfg.Backend)
}

func TestLoadRejectsMalformedBool(t *testing.T) {
	t.Setenv("FOCUS_LAUNCHER_DEBUG", "sometimes")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOCUS_LAUNCHER")
}
