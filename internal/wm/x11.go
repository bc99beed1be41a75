package wm

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"focus-launcher/internal/errors"
	"focus-launcher/pkg/logger"
)

// X11 drives windows through xdotool.
type X11 struct {
	run runFunc
	log *logger.Logger
}

func NewX11(log *logger.Logger) (*X11, error) {
	// Check if xdotool is available
	if _, err := exec.LookPath("xdotool"); err != nil {
		return nil, fmt.Errorf("xdotool is required for X11 support but was not found: %w", err)
	}
	return &X11{run: runCommand, log: log}, nil
}

func (x *X11) Name() string {
	return "X11"
}

func (x *X11) TopLevelWindows() ([]Handle, error) {
	out, err := x.run("xdotool", "search", "--onlyvisible", "--name", ".")
	if err != nil {
		if noMatches(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("xdotool search failed: %w", err)
	}

	var handles []Handle
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
		if err != nil {
			x.log.Debug("Skipping unparsable window id", "line", line)
			continue
		}
		handles = append(handles, Handle(id))
	}
	return handles, nil
}

// IsVisible is always true: the search above is restricted to visible windows.
func (x *X11) IsVisible(Handle) bool {
	return true
}

func (x *X11) Title(h Handle) string {
	out, err := x.run("xdotool", "getwindowname", x.id(h))
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(out), "\r\n")
}

func (x *X11) ProcessID(h Handle) uint32 {
	out, err := x.run("xdotool", "getwindowpid", x.id(h))
	if err != nil {
		return 0
	}
	pid, err := strconv.ParseUint(strings.TrimSpace(string(out)), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(pid)
}

func (x *X11) ForegroundWindow() Handle {
	out, err := x.run("xdotool", "getactivewindow")
	if err != nil {
		return 0
	}
	id, err := strconv.ParseUint(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0
	}
	return Handle(id)
}

// WindowThread is unknown under X11, which turns off input attachment.
func (x *X11) WindowThread(Handle) uint32 {
	return 0
}

func (x *X11) AttachInput(uint32, uint32, bool) error {
	return errors.NewUnsupported("input queue attachment")
}

func (x *X11) RestoreAsync(h Handle) error {
	return x.dispatch("windowmap", h)
}

func (x *X11) BringToTop(h Handle) error {
	return x.dispatch("windowraise", h)
}

func (x *X11) SetForeground(h Handle) error {
	return x.dispatch("windowactivate", h)
}

func (x *X11) dispatch(action string, h Handle) error {
	if h == 0 {
		return fmt.Errorf("cannot %s: no window ID provided", action)
	}
	if _, err := x.run("xdotool", action, x.id(h)); err != nil {
		return fmt.Errorf("xdotool %s failed: %w", action, err)
	}
	return nil
}

func (x *X11) id(h Handle) string {
	return strconv.FormatUint(uint64(h), 10)
}
