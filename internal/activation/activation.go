// Package activation asks the platform to launch or activate an installed
// application by its app id.
package activation

import (
	"fmt"

	"focus-launcher/internal/errors"
	"focus-launcher/pkg/logger"
)

// Options are ACTIVATEOPTIONS flags. Activation always passes OptionNone.
type Options uint32

const OptionNone Options = 0x0

// Service is an open handle on the platform activation manager.
type Service interface {
	// ActivateApplication returns the HRESULT; negative means failure.
	ActivateApplication(appID, arguments string, options Options) (hresult int32, pid uint32, err error)
	Close() error
}

// OpenFunc constructs a Service.
type OpenFunc func() (Service, error)

// Result describes a successful activation.
type Result struct {
	AppID   AppID
	PID     uint32
	HResult int32
}

// Resolver activates an app id, retrying a bare package id once with the
// default entry point appended.
type Resolver struct {
	open  OpenFunc
	entry string
	log   *logger.Logger
}

func NewResolver(open OpenFunc, entry string, log *logger.Logger) *Resolver {
	return &Resolver{open: open, entry: entry, log: log}
}

// Candidates lists the ids tried for id, in order.
func (r *Resolver) Candidates(id AppID) []AppID {
	if id.HasEntry() {
		return []AppID{id}
	}
	return []AppID{id, id.WithEntry(r.entry)}
}

// Activate returns true as soon as an attempt reports a non-negative HRESULT.
// Construction failures, call errors and panics all count as failure; a call
// that errors rather than reporting an HRESULT ends the attempt.
func (r *Resolver) Activate(id AppID) (Result, bool) {
	svc, err := r.openService()
	if err != nil {
		r.log.Debug("Activation service unavailable", "error", err.Error())
		return Result{}, false
	}
	defer func() {
		if err := svc.Close(); err != nil {
			r.log.Debug("Closing activation service failed", "error", err.Error())
		}
	}()

	for _, candidate := range r.Candidates(id) {
		hr, pid, err := r.call(svc, candidate)
		if err != nil {
			r.log.Debug("Activation raised", "error", errors.NewActivation(string(candidate), hr, err).Error())
			return Result{}, false
		}
		if hr >= 0 {
			r.log.Debug("Activated", "app_id", candidate, "pid", pid)
			return Result{AppID: candidate, PID: pid, HResult: hr}, true
		}
		r.log.Debug("Activation refused", "error", errors.NewActivation(string(candidate), hr, nil).Error())
	}
	return Result{}, false
}

func (r *Resolver) openService() (svc Service, err error) {
	defer func() {
		if p := recover(); p != nil {
			svc, err = nil, fmt.Errorf("activation service panicked: %v", p)
		}
	}()
	return r.open()
}

func (r *Resolver) call(svc Service, id AppID) (hr int32, pid uint32, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("activation panicked: %v", p)
		}
	}()
	return svc.ActivateApplication(string(id), "", OptionNone)
}
