//go:build !windows

package activation

import "focus-launcher/internal/errors"

// NewCOMActivator is only available on Windows.
func NewCOMActivator() (Service, error) {
	return nil, errors.NewUnsupported("application activation")
}
