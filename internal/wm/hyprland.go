package wm

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"focus-launcher/internal/errors"
	"focus-launcher/pkg/logger"
)

type hyprClient struct {
	Address string `json:"address"`
	Mapped  bool   `json:"mapped"`
	Hidden  bool   `json:"hidden"`
	Class   string `json:"class"`
	Title   string `json:"title"`
	PID     int    `json:"pid"`
}

// Hyprland drives windows through hyprctl. Window details come from the client
// list captured by the latest TopLevelWindows call.
type Hyprland struct {
	run     runFunc
	log     *logger.Logger
	clients map[Handle]hyprClient
}

func NewHyprland(log *logger.Logger) (*Hyprland, error) {
	// Check if hyprctl is available
	path, err := exec.LookPath("hyprctl")
	if err != nil {
		log.Error("hyprctl not found in PATH", err)
		return nil, fmt.Errorf("hyprctl not found in PATH: %w", err)
	}
	log.Debug("Found hyprctl", "path", path)

	return &Hyprland{run: runCommand, log: log}, nil
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) TopLevelWindows() ([]Handle, error) {
	output, err := h.run("hyprctl", "clients", "-j")
	if err != nil {
		h.log.Error("Failed to execute hyprctl", err, "output", string(output))
		return nil, fmt.Errorf("hyprctl error: %w", err)
	}

	h.clients = make(map[Handle]hyprClient)
	if len(output) == 0 {
		return nil, nil
	}

	var clients []hyprClient
	if err := json.Unmarshal(output, &clients); err != nil {
		h.log.Error("Failed to parse hyprctl output", err, "output", string(output))
		return nil, fmt.Errorf("failed to parse hyprctl output: %w", err)
	}

	handles := make([]Handle, 0, len(clients))
	for _, c := range clients {
		handle, ok := parseAddress(c.Address)
		if !ok {
			h.log.Debug("Skipping client with bad address", "address", c.Address, "class", c.Class)
			continue
		}
		h.clients[handle] = c
		handles = append(handles, handle)
	}
	return handles, nil
}

func (h *Hyprland) IsVisible(w Handle) bool {
	c, ok := h.clients[w]
	return ok && c.Mapped && !c.Hidden
}

func (h *Hyprland) Title(w Handle) string {
	return h.clients[w].Title
}

func (h *Hyprland) ProcessID(w Handle) uint32 {
	if pid := h.clients[w].PID; pid > 0 {
		return uint32(pid)
	}
	return 0
}

func (h *Hyprland) ForegroundWindow() Handle {
	output, err := h.run("hyprctl", "activewindow", "-j")
	if err != nil {
		return 0
	}
	var active hyprClient
	if err := json.Unmarshal(output, &active); err != nil {
		return 0
	}
	handle, _ := parseAddress(active.Address)
	return handle
}

// WindowThread is unknown under Hyprland, which turns off input attachment.
func (h *Hyprland) WindowThread(Handle) uint32 {
	return 0
}

func (h *Hyprland) AttachInput(uint32, uint32, bool) error {
	return errors.NewUnsupported("input queue attachment")
}

// RestoreAsync is a no-op: Hyprland has no minimized state.
func (h *Hyprland) RestoreAsync(Handle) error {
	return nil
}

func (h *Hyprland) BringToTop(w Handle) error {
	return h.dispatch("alterzorder", "top,address:"+formatAddress(w))
}

func (h *Hyprland) SetForeground(w Handle) error {
	h.log.Debug("Focusing window", "address", formatAddress(w))
	return h.dispatch("focuswindow", "address:"+formatAddress(w))
}

func (h *Hyprland) dispatch(args ...string) error {
	cmd := append([]string{"dispatch"}, args...)
	if output, err := h.run("hyprctl", cmd...); err != nil {
		h.log.Error("hyprctl dispatch failed", err, "args", args, "output", string(output))
		return fmt.Errorf("hyprctl dispatch %s failed: %w", args[0], err)
	}
	return nil
}

func parseAddress(addr string) (Handle, bool) {
	v, err := strconv.ParseUint(strings.TrimPrefix(addr, "0x"), 16, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return Handle(v), true
}

func formatAddress(h Handle) string {
	return fmt.Sprintf("0x%x", uint64(h))
}
