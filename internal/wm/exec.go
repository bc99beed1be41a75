package wm

import (
	"errors"
	"os/exec"
)

// runFunc runs an external tool and returns its stdout.
type runFunc func(name string, args ...string) ([]byte, error)

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// noMatches reports whether err is a tool's "nothing found" exit status.
func noMatches(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == 1
}
