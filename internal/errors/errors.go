package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a launcher failure.
type ErrorCode string

const (
	ErrUsage       ErrorCode = "USAGE"                 // exit 2
	ErrLookup      ErrorCode = "LOOKUP_FAILED"         // swallowed, non-match
	ErrActivation  ErrorCode = "ACTIVATION_FAILED"     // swallowed, next tier
	ErrShellLaunch ErrorCode = "SHELL_LAUNCH_FAILED"   // exit 1
	ErrExhausted   ErrorCode = "NO_STRATEGY_SUCCEEDED" // exit 1
	ErrUnsupported ErrorCode = "UNSUPPORTED"           // exit 1
)

// LaunchError is a structured error with a code and optional details.
type LaunchError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// NewUsage creates an error for absent or malformed arguments.
func NewUsage(msg string) *LaunchError {
	return &LaunchError{Code: ErrUsage, Message: msg}
}

// NewLookup creates an error for a window or process that no longer resolves.
func NewLookup(pid uint32, err error) *LaunchError {
	return &LaunchError{
		Code:    ErrLookup,
		Message: fmt.Sprintf("process %d not resolvable", pid),
		Details: map[string]any{"pid": pid},
		Err:     err,
	}
}

// NewActivation creates an error for a failed platform activation attempt.
func NewActivation(appID string, hresult int32, err error) *LaunchError {
	return &LaunchError{
		Code:    ErrActivation,
		Message: fmt.Sprintf("activation of %q failed (hr=0x%08X)", appID, uint32(hresult)),
		Details: map[string]any{"app_id": appID, "hresult": hresult},
		Err:     err,
	}
}

// NewShellLaunch creates an error for a shell launch that could not be started.
func NewShellLaunch(appID string, err error) *LaunchError {
	return &LaunchError{
		Code:    ErrShellLaunch,
		Message: fmt.Sprintf("shell launch of %q failed", appID),
		Details: map[string]any{"app_id": appID},
		Err:     err,
	}
}

// NewExhausted creates an error for a strategy chain where every tier failed.
// cause is the failure of the last tier.
func NewExhausted(appID string, cause error) *LaunchError {
	return &LaunchError{
		Code:    ErrExhausted,
		Message: fmt.Sprintf("no strategy succeeded for %q", appID),
		Details: map[string]any{"app_id": appID},
		Err:     cause,
	}
}

// NewUnsupported creates an error for a capability missing on this platform.
func NewUnsupported(what string) *LaunchError {
	return &LaunchError{
		Code:    ErrUnsupported,
		Message: fmt.Sprintf("%s is not supported on this platform", what),
	}
}

// Is checks if err is, or wraps, a LaunchError with the given code.
func Is(err error, code ErrorCode) bool {
	var lErr *LaunchError
	if stderrors.As(err, &lErr) {
		return lErr.Code == code
	}
	return false
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if Is(err, ErrUsage) {
		return 2
	}
	return 1
}
