package config

import (
	"fmt"
	"runtime"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. FOCUS_LAUNCHER_DEBUG.
const Prefix = "FOCUS_LAUNCHER"

const (
	DefaultEntry       = "App"
	DefaultShellPrefix = `shell:AppsFolder\`
)

// Config holds the launcher settings. There is no config file; every field
// comes from the environment.
type Config struct {
	Debug   bool   `envconfig:"DEBUG"`
	LogFile string `envconfig:"LOG_FILE"`

	// DefaultEntry is appended as "<id>!<entry>" when a bare package id fails to activate.
	DefaultEntry string `envconfig:"DEFAULT_ENTRY" default:"App"`
	// ShellPrefix is stripped from identifiers and prepended again for explorer.exe.
	ShellPrefix  string `envconfig:"SHELL_PREFIX" default:"shell:AppsFolder\\"`
	ShellCommand string `envconfig:"SHELL_COMMAND"`

	// Backend forces a window backend: win32, x11 or hyprland. Empty means detect.
	Backend string `envconfig:"BACKEND"`
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		DefaultEntry: DefaultEntry,
		ShellPrefix:  DefaultShellPrefix,
		ShellCommand: defaultShellCommand(),
	}
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, fmt.Errorf("invalid %s_* environment: %w", Prefix, err)
	}
	if cfg.ShellCommand == "" {
		cfg.ShellCommand = defaultShellCommand()
	}
	if cfg.DefaultEntry == "" {
		cfg.DefaultEntry = DefaultEntry
	}
	return cfg, nil
}

func defaultShellCommand() string {
	if runtime.GOOS == "windows" {
		return "explorer.exe"
	}
	return "gtk-launch"
}
