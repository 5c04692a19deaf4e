package nav

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/niriutils/nirictl/internal/niri"
	"github.com/niriutils/nirictl/internal/util"
)

// Compositor is the query/action surface the engine needs. *niri.Client
// satisfies it; tests substitute fakes.
type Compositor interface {
	Windows(ctx context.Context) ([]niri.Window, error)
	OverviewOpen(ctx context.Context) (bool, error)
	RunAction(ctx context.Context, name string) error
}

// Failure taxonomy. Primary failure is fatal without a fallback attempt
// (re-running a stateful action could double-apply it); unobservable
// after-state means the decision cannot be made; a failed fallback is
// the overall outcome.
var (
	ErrPrimaryFailed    = errors.New("primary action failed")
	ErrStateUnavailable = errors.New("window state unavailable after primary action")
	ErrFallbackFailed   = errors.New("fallback action failed")
)

// DefaultSettle is how long the engine waits after the primary action
// before re-querying. A single fixed pause, not a poll loop: long
// enough for the compositor to apply the change, short enough to stay
// invisible on a keypress.
const DefaultSettle = 10 * time.Millisecond

// Request is one navigation decision to make. Direction is
// informational only; the branch taken depends on observed state, not
// on it. Overview is optional and defaults to Fallback.
type Request struct {
	Direction string
	Primary   string
	Fallback  string
	Overview  string
}

// Result describes which branch decided the invocation. It is not
// persisted anywhere; the nav command reduces it to an exit code and
// the agent server reports it verbatim.
type Result struct {
	Direction   string `yaml:"direction"          json:"direction"`
	Primary     string `yaml:"primary"            json:"primary"`
	Fallback    string `yaml:"fallback"           json:"fallback"`
	Intent      string `yaml:"intent,omitempty"   json:"intent,omitempty"`
	Outcome     string `yaml:"outcome"            json:"outcome"`
	FallbackRan bool   `yaml:"fallback_ran"       json:"fallback_ran"`
}

// Engine runs the before/act/after/compare protocol against a
// compositor. One Run per keypress; the engine holds no state between
// runs.
type Engine struct {
	Comp   Compositor
	Log    *util.Logger
	Settle time.Duration
}

// New returns an engine with the default settle pause.
func New(comp Compositor, log *util.Logger) *Engine {
	return &Engine{Comp: comp, Log: log, Settle: DefaultSettle}
}

// Run executes the decision protocol once. The returned error wraps one
// of the sentinel errors above; a nil error means the invocation
// succeeded, whether or not the fallback ran.
func (e *Engine) Run(ctx context.Context, req Request) (Result, error) {
	res := Result{Direction: req.Direction, Primary: req.Primary, Fallback: req.Fallback}

	open, err := e.Comp.OverviewOpen(ctx)
	if err != nil {
		e.Log.Debugf("overview state unavailable, treating as closed: %v", err)
		open = false
	}
	if open {
		action := req.Overview
		if action == "" {
			action = req.Fallback
		}
		e.Log.Debugf("overview is open; running overview action %q", action)
		res.Outcome = "overview-open"
		return e.finish(ctx, res, action)
	}

	before, err := e.Comp.Windows(ctx)
	if err != nil {
		e.Log.Debugf("window query unavailable: %v", err)
	}
	if len(before) == 0 {
		e.Log.Debugf("no windows present (likely an empty workspace); running fallback")
		res.Outcome = "no-windows"
		return e.finish(ctx, res, req.Fallback)
	}

	focused, ok := focusedWindow(before)
	if !ok {
		e.Log.Debugf("no focused window available; running fallback")
		res.Outcome = "no-focus"
		return e.finish(ctx, res, req.Fallback)
	}
	if focused.Floating() {
		e.Log.Debugf("focused window is floating; running fallback")
		res.Outcome = "floating"
		return e.finish(ctx, res, req.Fallback)
	}

	identityBefore := IdentityOf(focused)
	snapshotBefore := SnapshotOf(focused)
	intent := ClassifyAction(req.Primary)
	res.Intent = intent.String()

	e.Log.Debugf("running primary action %q (direction=%s, intent=%s)", req.Primary, req.Direction, intent)
	if err := e.Comp.RunAction(ctx, req.Primary); err != nil {
		e.Log.Debugf("primary action failed to execute: %v", err)
		res.Outcome = "primary-failed"
		return res, fmt.Errorf("%w: %v", ErrPrimaryFailed, err)
	}

	// Give the compositor a moment to apply the change before re-querying.
	time.Sleep(e.Settle)

	after, err := e.Comp.Windows(ctx)
	if len(after) == 0 {
		e.Log.Debugf("could not re-query windows after the primary action")
		res.Outcome = "state-unavailable"
		if err != nil {
			return res, fmt.Errorf("%w: %v", ErrStateUnavailable, err)
		}
		return res, ErrStateUnavailable
	}

	var fallbackNeeded bool
	switch intent {
	case FocusIntent:
		focusedAfter, ok := focusedWindow(after)
		afterIdentity := Identity("")
		if ok {
			afterIdentity = IdentityOf(focusedAfter)
		}
		fallbackNeeded = !ok || afterIdentity == identityBefore
		e.Log.Debugf("focused identity before=%s after=%s -> fallback_needed=%t",
			identityBefore, afterIdentity, fallbackNeeded)
		if fallbackNeeded {
			res.Outcome = "focus-unmoved"
		} else {
			res.Outcome = "focus-moved"
		}
	default:
		moved, ok := FindByIdentity(after, identityBefore)
		if !ok {
			// The window left the query scope entirely; treated as a
			// successful move even though a close would look the same.
			fallbackNeeded = false
			res.Outcome = "window-gone"
		} else if SnapshotOf(moved) == snapshotBefore {
			fallbackNeeded = true
			res.Outcome = "layout-unchanged"
		} else {
			res.Outcome = "layout-changed"
		}
		e.Log.Debugf("move snapshot changed=%t (window missing=%t)", !fallbackNeeded, !ok)
	}

	if fallbackNeeded {
		e.Log.Debugf("running fallback action %q", req.Fallback)
		return e.finish(ctx, res, req.Fallback)
	}
	return res, nil
}

// finish runs the terminal fallback (or overview) action and folds its
// outcome into the result.
func (e *Engine) finish(ctx context.Context, res Result, action string) (Result, error) {
	res.FallbackRan = true
	if err := e.Comp.RunAction(ctx, action); err != nil {
		return res, fmt.Errorf("%w: %v", ErrFallbackFailed, err)
	}
	return res, nil
}

func focusedWindow(ws []niri.Window) (niri.Window, bool) {
	for _, w := range ws {
		if w.Focused() {
			return w, true
		}
	}
	return nil, false
}
