//go:build !windows

package wm

import "focus-launcher/internal/errors"

// Win32 is only available on Windows.
type Win32 struct {
	WindowManager
}

func NewWin32() (*Win32, error) {
	return nil, errors.NewUnsupported("win32 window backend")
}
