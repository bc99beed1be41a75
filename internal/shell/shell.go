// Package shell launches an application by id through the desktop shell.
package shell

import (
	"os/exec"
	"path/filepath"
	"strings"

	"focus-launcher/internal/errors"
	"focus-launcher/pkg/config"
	"focus-launcher/pkg/logger"
)

// Launcher starts an application without waiting for it.
type Launcher interface {
	Launch(appID string) error
}

// startFunc starts a process and returns once it is spawned.
type startFunc func(name string, args ...string) error

func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// The child outlives us; its exit status is never inspected.
	return cmd.Process.Release()
}

// Command is a fire-and-forget Launcher. Under explorer.exe the id is passed
// as "shell:AppsFolder\<id>"; other commands receive the bare id.
type Command struct {
	command string
	prefix  string
	start   startFunc
	log     *logger.Logger
}

func NewLauncher(cfg *config.Config, log *logger.Logger) *Command {
	prefix := ""
	if isExplorer(cfg.ShellCommand) {
		prefix = cfg.ShellPrefix
	}
	return &Command{
		command: cfg.ShellCommand,
		prefix:  prefix,
		start:   startCommand,
		log:     log,
	}
}

// isExplorer matches "explorer", "explorer.exe" or a path to either, in any case.
func isExplorer(command string) bool {
	base := strings.ToLower(filepath.Base(strings.ReplaceAll(command, `\`, "/")))
	return base == "explorer" || base == "explorer.exe"
}

// Launch reports only whether the process could be started, not whether the
// application came up.
func (c *Command) Launch(appID string) error {
	arg := c.prefix + appID
	c.log.Debug("Shell launch", "command", c.command, "arg", arg)
	if err := c.start(c.command, arg); err != nil {
		return errors.NewShellLaunch(appID, err)
	}
	return nil
}
