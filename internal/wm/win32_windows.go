//go:build windows

package wm

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const swRestore = 9

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procAttachThreadInput    = user32.NewProc("AttachThreadInput")
	procShowWindowAsync      = user32.NewProc("ShowWindowAsync")
	procBringWindowToTop     = user32.NewProc("BringWindowToTop")
	procSetForegroundWindow  = user32.NewProc("SetForegroundWindow")
)

// EnumWindows callbacks are a scarce process-wide resource, so a single one is
// shared and guarded by enumMu.
var (
	enumMu      sync.Mutex
	enumHandles []Handle
	enumProc    = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		enumHandles = append(enumHandles, Handle(hwnd))
		return 1
	})
)

// Win32 talks to user32 directly.
type Win32 struct{}

func NewWin32() (*Win32, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("user32.dll unavailable: %w", err)
	}
	return &Win32{}, nil
}

func (w *Win32) Name() string {
	return "Win32"
}

func (w *Win32) TopLevelWindows() ([]Handle, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = nil
	if err := windows.EnumWindows(enumProc, nil); err != nil {
		enumHandles = nil
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}
	handles := enumHandles
	enumHandles = nil
	return handles, nil
}

func (w *Win32) IsVisible(h Handle) bool {
	return windows.IsWindowVisible(windows.HWND(h))
}

// Title reads the length first, then the text.
func (w *Win32) Title(h Handle) string {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if int32(n) <= 0 {
		return ""
	}
	buf := make([]uint16, int(n)+1)
	got, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if int32(got) <= 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:int32(got)])
}

func (w *Win32) ProcessID(h Handle) uint32 {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(windows.HWND(h), &pid); err != nil {
		return 0
	}
	return pid
}

func (w *Win32) ForegroundWindow() Handle {
	return Handle(windows.GetForegroundWindow())
}

func (w *Win32) WindowThread(h Handle) uint32 {
	tid, err := windows.GetWindowThreadProcessId(windows.HWND(h), nil)
	if err != nil {
		return 0
	}
	return tid
}

func (w *Win32) AttachInput(from, to uint32, attach bool) error {
	var flag uintptr
	if attach {
		flag = 1
	}
	if r, _, err := procAttachThreadInput.Call(uintptr(from), uintptr(to), flag); r == 0 {
		return fmt.Errorf("AttachThreadInput: %w", err)
	}
	return nil
}

func (w *Win32) RestoreAsync(h Handle) error {
	if r, _, err := procShowWindowAsync.Call(uintptr(h), swRestore); r == 0 {
		return fmt.Errorf("ShowWindowAsync: %w", err)
	}
	return nil
}

func (w *Win32) BringToTop(h Handle) error {
	if r, _, err := procBringWindowToTop.Call(uintptr(h)); r == 0 {
		return fmt.Errorf("BringWindowToTop: %w", err)
	}
	return nil
}

func (w *Win32) SetForeground(h Handle) error {
	if r, _, err := procSetForegroundWindow.Call(uintptr(h)); r == 0 {
		return fmt.Errorf("SetForegroundWindow: %w", err)
	}
	return nil
}
