// Package match finds the first window satisfying title and process criteria
// and focuses it.
package match

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"focus-launcher/internal/procinfo"
	"focus-launcher/internal/wm"
	"focus-launcher/pkg/logger"
)

// Criteria selects a window. Blank fields are not requested.
type Criteria struct {
	// Title is a case-insensitive substring of the window title.
	Title string
	// Process is the owning process name, case-insensitive, ".exe" optional.
	Process string
}

// Active reports whether the focus strategy may run at all. A process name on
// its own is not enough.
func (c Criteria) Active() bool {
	return strings.TrimSpace(c.Title) != ""
}

// Windows is the enumeration source the matcher consumes.
type Windows interface {
	Windows() iter.Seq[wm.Window]
}

// Focuser brings a window to the foreground.
type Focuser interface {
	ForceForeground(h wm.Handle) error
}

type Matcher struct {
	windows Windows
	focuser Focuser
	names   procinfo.Namer
	log     *logger.Logger
}

func NewMatcher(windows Windows, focuser Focuser, names procinfo.Namer, log *logger.Logger) *Matcher {
	return &Matcher{windows: windows, focuser: focuser, names: names, log: log}
}

// Find returns the first window in enumeration order that satisfies c.
func (m *Matcher) Find(c Criteria) (wm.Window, bool) {
	if !c.Active() {
		return wm.Window{}, false
	}
	needle := strings.ToLower(c.Title)
	process := strings.TrimSpace(c.Process)

	for w := range m.windows.Windows() {
		if strings.TrimSpace(w.Title) == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(w.Title), needle) {
			continue
		}
		if process != "" && !m.ownedBy(w, process) {
			continue
		}
		return w, true
	}
	return wm.Window{}, false
}

// FindAndFocus focuses the first window satisfying c. Focusing counts as
// success even if the OS does not confirm it.
func (m *Matcher) FindAndFocus(c Criteria) (wm.Window, bool) {
	w, ok := m.Find(c)
	if !ok {
		m.log.Debug("No window matched", "title", c.Title, "process", c.Process)
		return wm.Window{}, false
	}

	m.log.Debug("Window matched", "title", w.Title, "pid", w.PID, "handle", uintptr(w.Handle))
	if err := m.focuser.ForceForeground(w.Handle); err != nil {
		m.log.Debug("Focus attempted with errors", "error", err.Error())
	}
	return w, true
}

func (m *Matcher) ownedBy(w wm.Window, process string) bool {
	name, err := m.names.ProcessName(w.PID)
	if err != nil {
		m.log.Debug("Process lookup failed", "pid", w.PID, "error", err.Error())
		return false
	}
	return procinfo.SameProcess(name, process)
}

// List writes every visible, titled window as "<title> | <process>", using
// "(unknown)" when the owner cannot be resolved.
func List(out io.Writer, windows Windows, names procinfo.Namer) error {
	for w := range windows.Windows() {
		if strings.TrimSpace(w.Title) == "" {
			continue
		}
		proc := "(unknown)"
		if name, err := names.ProcessName(w.PID); err == nil {
			proc = procinfo.BaseName(name)
		}
		if _, err := fmt.Fprintf(out, "%s | %s\n", w.Title, proc); err != nil {
			return fmt.Errorf("failed to write window list: %w", err)
		}
	}
	return nil
}
