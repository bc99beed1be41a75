package wm

import (
	"errors"
	"fmt"

	"focus-launcher/pkg/logger"
)

// FocusStealer brings a window to the foreground even when another process
// owns input focus.
type FocusStealer struct {
	input InputControl
	log   *logger.Logger
}

func NewFocusStealer(input InputControl, log *logger.Logger) *FocusStealer {
	return &FocusStealer{input: input, log: log}
}

// ForceForeground restores, raises and focuses h. When the foreground window
// belongs to another thread, that thread's input queue is attached to h's for
// the duration of the calls and always detached again, including on panic.
//
// The returned error joins any step failures. The OS does not reliably report
// whether focus was granted, so callers treat the attempt itself as success.
func (f *FocusStealer) ForceForeground(h Handle) error {
	fg := f.input.ForegroundWindow()
	var fgThread uint32
	if fg != 0 {
		fgThread = f.input.WindowThread(fg)
	}
	targetThread := f.input.WindowThread(h)

	if fgThread != 0 && fgThread != targetThread {
		if err := f.input.AttachInput(fgThread, targetThread, true); err != nil {
			f.log.Debug("Input attach refused", "error", err.Error(),
				"foreground_thread", fgThread, "target_thread", targetThread)
		} else {
			defer f.detach(fgThread, targetThread)
		}
	}

	var errs []error
	if err := f.input.RestoreAsync(h); err != nil {
		errs = append(errs, fmt.Errorf("restore: %w", err))
	}
	if err := f.input.BringToTop(h); err != nil {
		errs = append(errs, fmt.Errorf("raise: %w", err))
	}
	if err := f.input.SetForeground(h); err != nil {
		errs = append(errs, fmt.Errorf("foreground: %w", err))
	}

	err := errors.Join(errs...)
	if err != nil {
		f.log.Debug("Foreground request incomplete", "handle", uintptr(h), "error", err.Error())
	}
	return err
}

func (f *FocusStealer) detach(from, to uint32) {
	if err := f.input.AttachInput(from, to, false); err != nil {
		f.log.Warn("Input detach failed", "error", err.Error(),
			"foreground_thread", from, "target_thread", to)
	}
}
