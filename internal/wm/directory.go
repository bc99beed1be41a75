package wm

import (
	"fmt"
	"iter"

	"focus-launcher/pkg/logger"
)

// Directory enumerates visible top-level windows.
type Directory struct {
	desktop Desktop
	log     *logger.Logger
}

func NewDirectory(desktop Desktop, log *logger.Logger) *Directory {
	return &Directory{desktop: desktop, log: log}
}

// Snapshot captures the handles of all top-level windows. Windows may open or
// close afterwards; a second snapshot can differ in order and contents.
func (d *Directory) Snapshot() ([]Handle, error) {
	handles, err := d.desktop.TopLevelWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}
	return handles, nil
}

// Windows yields each visible window of a fresh snapshot in OS order. Title and
// owner are queried only when a window is reached, and nothing more is queried
// once the consumer stops.
func (d *Directory) Windows() iter.Seq[Window] {
	return func(yield func(Window) bool) {
		handles, err := d.Snapshot()
		if err != nil {
			d.log.Warn("Window enumeration failed", "error", err.Error())
			return
		}
		d.log.Debug("Enumerating windows", "count", len(handles))

		for _, h := range handles {
			if !d.desktop.IsVisible(h) {
				continue
			}
			w := Window{
				Handle: h,
				Title:  d.desktop.Title(h),
				PID:    d.desktop.ProcessID(h),
			}
			if !yield(w) {
				return
			}
		}
	}
}
