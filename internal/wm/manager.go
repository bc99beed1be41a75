package wm

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"focus-launcher/internal/errors"
	"focus-launcher/pkg/config"
	"focus-launcher/pkg/global"
	"focus-launcher/pkg/logger"
)

const (
	BackendWin32    = "win32"
	BackendX11      = "x11"
	BackendHyprland = "hyprland"
)

// Manager owns the active backend and hands out the window services built on it.
type Manager struct {
	wm  WindowManager
	log *logger.Logger
}

// NewManager creates a window manager for the configured or detected backend.
// A nil cfg falls back to the global config.
func NewManager(cfg *config.Config) (*Manager, error) {
	log := global.GetLogger()
	if cfg == nil {
		cfg = global.GetConfig()
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		detected, err := detectBackend(runtime.GOOS, os.Getenv)
		if err != nil {
			return nil, err
		}
		backend = detected
	}
	log.Debug("Initializing window backend", "type", backend)

	var wm WindowManager
	var err error

	switch backend {
	case BackendWin32:
		wm, err = NewWin32()
	case BackendHyprland:
		wm, err = NewHyprland(log)
	case BackendX11:
		wm, err = NewX11(log)
	default:
		return nil, errors.NewUnsupported(fmt.Sprintf("window backend %q", backend))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s support: %w", backend, err)
	}

	log.Debug("Window manager initialized", "name", wm.Name())
	return &Manager{wm: wm, log: log}, nil
}

// NewManagerWith wraps an already constructed backend.
func NewManagerWith(wm WindowManager, log *logger.Logger) *Manager {
	return &Manager{wm: wm, log: log}
}

// detectBackend picks a backend from the OS and the session environment.
func detectBackend(goos string, getenv func(string) string) (string, error) {
	if goos == "windows" {
		return BackendWin32, nil
	}

	sessionType := getenv("XDG_SESSION_TYPE")
	switch sessionType {
	case "wayland":
		if getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
			return BackendHyprland, nil
		}
		return "", errors.NewUnsupported("Wayland compositor other than Hyprland")
	case "x11":
		return BackendX11, nil
	default:
		return "", errors.NewUnsupported(fmt.Sprintf("session type %q", sessionType))
	}
}

// Directory returns a window directory over the backend.
func (m *Manager) Directory() *Directory {
	return NewDirectory(m.wm, m.log)
}

// FocusStealer returns a focus stealer over the backend.
func (m *Manager) FocusStealer() *FocusStealer {
	return NewFocusStealer(m.wm, m.log)
}

// GetWMName returns the name of the current window manager
func (m *Manager) GetWMName() string {
	return m.wm.Name()
}
