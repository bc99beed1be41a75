// Package launch runs the focus, activate, shell-launch fallback chain.
package launch

import (
	"fmt"

	"focus-launcher/internal/activation"
	"focus-launcher/internal/errors"
	"focus-launcher/internal/match"
	"focus-launcher/internal/shell"
	"focus-launcher/internal/wm"
	"focus-launcher/pkg/logger"
)

// Kind tags an Outcome.
type Kind int

const (
	Failed Kind = iota
	Focused
	Activated
	ShellLaunched
)

func (k Kind) String() string {
	switch k {
	case Focused:
		return "focused"
	case Activated:
		return "activated"
	case ShellLaunched:
		return "shell-launched"
	default:
		return "failed"
	}
}

// Outcome is the result of exactly one tier.
type Outcome struct {
	Kind  Kind
	AppID activation.AppID
	// Window is set for Focused.
	Window wm.Window
	// Activation is set for Activated.
	Activation activation.Result
	// Err is set for Failed.
	Err error
}

func (o Outcome) Succeeded() bool {
	return o.Kind != Failed
}

func (o Outcome) String() string {
	switch o.Kind {
	case Focused:
		return fmt.Sprintf("focused %q", o.Window.Title)
	case Activated:
		return fmt.Sprintf("activated %s (pid %d)", o.Activation.AppID, o.Activation.PID)
	case ShellLaunched:
		return fmt.Sprintf("shell-launched %s", o.AppID)
	default:
		return fmt.Sprintf("failed: %v", o.Err)
	}
}

// Request is one invocation of the chain.
type Request struct {
	AppID    activation.AppID
	Criteria match.Criteria
}

// WindowFocuser is the focus-existing-window tier.
type WindowFocuser interface {
	FindAndFocus(c match.Criteria) (wm.Window, bool)
}

// Activator is the platform activation tier.
type Activator interface {
	Activate(id activation.AppID) (activation.Result, bool)
}

// Strategy tries each tier in order and stops at the first success. There is
// no backtracking and no retry across tiers.
type Strategy struct {
	focus    WindowFocuser
	activate Activator
	shell    shell.Launcher
	log      *logger.Logger
}

func NewStrategy(focus WindowFocuser, activate Activator, launcher shell.Launcher, log *logger.Logger) *Strategy {
	return &Strategy{focus: focus, activate: activate, shell: launcher, log: log}
}

// Run executes the chain. Focus is only tried when a title is given. The shell
// tier is fire-and-forget: starting the launcher counts as success.
func (s *Strategy) Run(req Request) Outcome {
	if req.Criteria.Active() {
		s.log.Debug("Trying tier", "tier", "focus", "title", req.Criteria.Title, "process", req.Criteria.Process)
		if w, ok := s.focus.FindAndFocus(req.Criteria); ok {
			return Outcome{Kind: Focused, AppID: req.AppID, Window: w}
		}
	}

	s.log.Debug("Trying tier", "tier", "activate", "app_id", req.AppID)
	if res, ok := s.activate.Activate(req.AppID); ok {
		return Outcome{Kind: Activated, AppID: req.AppID, Activation: res}
	}

	s.log.Debug("Trying tier", "tier", "shell", "app_id", req.AppID)
	if err := s.launchShell(req.AppID); err != nil {
		s.log.Error("All strategies failed", err, "app_id", req.AppID)
		return Outcome{Kind: Failed, AppID: req.AppID, Err: errors.NewExhausted(string(req.AppID), err)}
	}
	return Outcome{Kind: ShellLaunched, AppID: req.AppID}
}

func (s *Strategy) launchShell(id activation.AppID) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.NewShellLaunch(string(id), fmt.Errorf("panic: %v", p))
		}
	}()
	return s.shell.Launch(string(id))
}
