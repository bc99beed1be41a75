// Package wmtest provides an in-memory window backend for tests.
package wmtest

import (
	"fmt"
	"sync"

	"focus-launcher/internal/wm"
)

// Window describes one fake top-level window.
type Window struct {
	Handle wm.Handle
	Title  string
	PID    uint32
	Thread uint32
	Hidden bool
}

// Backend is a scripted wm.WindowManager that records every focus call.
type Backend struct {
	mu sync.Mutex

	Windows    []Window
	Foreground wm.Handle
	EnumErr    error

	AttachErr     error
	RestoreErr    error
	RaiseErr      error
	ForegroundErr error
	// PanicOn names a focus step ("restore", "raise", "foreground") that panics.
	PanicOn string

	calls   []string
	queried map[wm.Handle]int
}

var _ wm.WindowManager = (*Backend)(nil)

func (b *Backend) Name() string {
	return "fake"
}

func (b *Backend) TopLevelWindows() ([]wm.Handle, error) {
	b.record("enumerate")
	if b.EnumErr != nil {
		return nil, b.EnumErr
	}
	handles := make([]wm.Handle, 0, len(b.Windows))
	for _, w := range b.Windows {
		handles = append(handles, w.Handle)
	}
	return handles, nil
}

func (b *Backend) IsVisible(h wm.Handle) bool {
	b.touch(h)
	w, ok := b.find(h)
	return ok && !w.Hidden
}

func (b *Backend) Title(h wm.Handle) string {
	b.touch(h)
	w, _ := b.find(h)
	return w.Title
}

func (b *Backend) ProcessID(h wm.Handle) uint32 {
	w, _ := b.find(h)
	return w.PID
}

func (b *Backend) ForegroundWindow() wm.Handle {
	return b.Foreground
}

func (b *Backend) WindowThread(h wm.Handle) uint32 {
	w, _ := b.find(h)
	return w.Thread
}

func (b *Backend) AttachInput(from, to uint32, attach bool) error {
	if attach {
		b.record(fmt.Sprintf("attach %d->%d", from, to))
		return b.AttachErr
	}
	b.record(fmt.Sprintf("detach %d->%d", from, to))
	return nil
}

func (b *Backend) RestoreAsync(h wm.Handle) error {
	return b.step("restore", h, b.RestoreErr)
}

func (b *Backend) BringToTop(h wm.Handle) error {
	return b.step("raise", h, b.RaiseErr)
}

func (b *Backend) SetForeground(h wm.Handle) error {
	return b.step("foreground", h, b.ForegroundErr)
}

// Calls returns the recorded operations in order.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// Queried reports how many times h had its visibility or title read.
func (b *Backend) Queried(h wm.Handle) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queried[h]
}

// Focused returns the handles passed to SetForeground.
func (b *Backend) Focused() []wm.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []wm.Handle
	for _, c := range b.calls {
		var h uintptr
		if _, err := fmt.Sscanf(c, "foreground %d", &h); err == nil {
			out = append(out, wm.Handle(h))
		}
	}
	return out
}

func (b *Backend) step(name string, h wm.Handle, err error) error {
	b.record(fmt.Sprintf("%s %d", name, h))
	if b.PanicOn == name {
		panic(name + " exploded")
	}
	return err
}

func (b *Backend) find(h wm.Handle) (Window, bool) {
	for _, w := range b.Windows {
		if w.Handle == h {
			return w, true
		}
	}
	return Window{}, false
}

func (b *Backend) touch(h wm.Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.queried == nil {
		b.queried = make(map[wm.Handle]int)
	}
	b.queried[h]++
}

func (b *Backend) record(call string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call)
}
