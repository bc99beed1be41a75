// Package procinfo resolves process ids to executable names.
package procinfo

import (
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"focus-launcher/internal/errors"
)

// Namer resolves a process id to its name.
type Namer interface {
	ProcessName(pid uint32) (string, error)
}

// Lookup is a Namer backed by the live process table.
type Lookup struct{}

func NewLookup() *Lookup {
	return &Lookup{}
}

// ProcessName fails for pid 0 and for processes that have exited.
func (Lookup) ProcessName(pid uint32) (string, error) {
	if pid == 0 {
		return "", errors.NewLookup(pid, nil)
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", errors.NewLookup(pid, err)
	}
	name, err := p.Name()
	if err != nil || name == "" {
		return "", errors.NewLookup(pid, err)
	}
	return name, nil
}

// BaseName drops a trailing ".exe" so "notepad.exe" and "notepad" compare equal.
func BaseName(name string) string {
	if len(name) > 4 && strings.EqualFold(name[len(name)-4:], ".exe") {
		return name[:len(name)-4]
	}
	return name
}

// SameProcess reports whether name matches want, ignoring case and ".exe".
func SameProcess(name, want string) bool {
	return strings.EqualFold(BaseName(strings.TrimSpace(name)), BaseName(strings.TrimSpace(want)))
}
