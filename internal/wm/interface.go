package wm

// Handle identifies a top-level window. It is owned by the OS; this program
// only observes it and asks for focus changes.
type Handle uintptr

// Window is one visible top-level window seen during an enumeration pass.
// Title is empty when the OS reports zero length; PID is 0 when unknown.
type Window struct {
	Handle Handle
	Title  string
	PID    uint32
}

// Desktop is the read-only window query surface of a backend.
type Desktop interface {
	// TopLevelWindows returns the current top-level windows in OS order.
	TopLevelWindows() ([]Handle, error)
	IsVisible(h Handle) bool
	// Title returns "" when the window has no title or the query fails.
	Title(h Handle) string
	// ProcessID returns 0 when the owner cannot be resolved.
	ProcessID(h Handle) uint32
}

// InputControl is the focus-changing surface of a backend.
type InputControl interface {
	// ForegroundWindow returns 0 when no window has focus.
	ForegroundWindow() Handle
	// WindowThread returns the thread owning h's input queue, 0 if unknown.
	WindowThread(h Handle) uint32
	AttachInput(from, to uint32, attach bool) error
	// RestoreAsync un-minimizes h without waiting for it to finish.
	RestoreAsync(h Handle) error
	BringToTop(h Handle) error
	SetForeground(h Handle) error
}

// WindowManager is a complete backend.
type WindowManager interface {
	Desktop
	InputControl
	// Name returns the WM name for logging/display
	Name() string
}
