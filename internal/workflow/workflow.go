// Package workflow dispatches a validated form to its persistence action and
// applies the outcome: notification, reset, close and refresh on success, or a
// notification with the entered values left intact on failure.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tasknest/internal/form"
)

// Action persists a payload. Any returned error is a failed submission.
type Action[V, R any] func(ctx context.Context, payload V) (R, error)

// Options configures a Workflow
type Options[V, R any] struct {
	Action    Action[V, R]
	Notifier  Notifier
	Refresher Refresher
	Logger    *slog.Logger

	Success Message
	Failure Message

	// LogMessage is the log line written with the failure detail
	LogMessage string

	// Normalize turns the form values into the payload, for example trimming text.
	Normalize func(V) V

	// OnClose is called after a successful submission to hide the shell
	OnClose func()
}

// Submission is a validated payload bound to the session that produced it
type Submission[V any] struct {
	Session uint64
	Payload V
}

// Result is the outcome of a dispatched submission
type Result[R any] struct {
	Session uint64
	Value   R
	Err     error
}

// Workflow drives one form instance. It is not safe for concurrent use: Begin,
// Close and Complete run on the UI event loop, only Dispatch may run elsewhere.
type Workflow[V, R any] struct {
	opts    Options[V, R]
	session uint64
}

// New creates a workflow
func New[V, R any](opts Options[V, R]) *Workflow[V, R] {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.LogMessage == "" {
		opts.LogMessage = "submission failed"
	}
	return &Workflow[V, R]{opts: opts, session: 1}
}

// Session identifies the current open period of the shell
func (w *Workflow[V, R]) Session() uint64 {
	return w.session
}

// Close resets the form and starts a new session, so that results of
// submissions still in flight no longer touch this form.
func (w *Workflow[V, R]) Close(state *form.State[V]) {
	state.Reset()
	w.session++
}

// Begin validates the form and marks it submitting. The action must not be
// dispatched when an error is returned.
func (w *Workflow[V, R]) Begin(state *form.State[V]) (Submission[V], error) {
	if state.Submitting() {
		return Submission[V]{}, ErrSubmitting
	}

	if errs := state.Validate(); errs.Any() {
		return Submission[V]{}, fmt.Errorf("%w: %w", ErrInvalid, errs)
	}

	payload := state.Values()
	if w.opts.Normalize != nil {
		payload = w.opts.Normalize(payload)
	}

	state.SetSubmitting(true)
	return Submission[V]{Session: w.session, Payload: payload}, nil
}

// Dispatch runs the action. It only reads the submission, so it can run off
// the event loop.
func (w *Workflow[V, R]) Dispatch(ctx context.Context, sub Submission[V]) Result[R] {
	res := Result[R]{Session: sub.Session}
	if w.opts.Action == nil {
		res.Err = &SubmissionFailed{Err: errNoAction}
		return res
	}

	value, err := w.opts.Action(ctx, sub.Payload)
	if err != nil {
		res.Err = &SubmissionFailed{Err: err}
		return res
	}
	res.Value = value
	return res
}

// Complete applies a result and reports whether the submission succeeded.
// Results from an earlier session only notify and refresh.
func (w *Workflow[V, R]) Complete(state *form.State[V], res Result[R]) bool {
	if res.Session != w.session {
		w.opts.Logger.Debug("submission completed after its form was closed",
			"session", res.Session, "current", w.session, "error", res.Err)
		if res.Err != nil {
			w.logFailure(res.Err)
			w.notify(KindError, w.opts.Failure)
			return false
		}
		w.notify(KindSuccess, w.opts.Success)
		w.refresh()
		return true
	}

	state.SetSubmitting(false)

	if res.Err != nil {
		w.logFailure(res.Err)
		w.notify(KindError, w.opts.Failure)
		return false
	}

	w.Close(state)
	if w.opts.OnClose != nil {
		w.opts.OnClose()
	}
	w.notify(KindSuccess, w.opts.Success)
	w.refresh()
	return true
}

// Run is Begin, Dispatch and Complete in sequence, for callers without an event loop
func (w *Workflow[V, R]) Run(ctx context.Context, state *form.State[V]) (R, error) {
	var zero R

	sub, err := w.Begin(state)
	if err != nil {
		return zero, err
	}

	res := w.Dispatch(ctx, sub)
	w.Complete(state, res)
	return res.Value, res.Err
}

func (w *Workflow[V, R]) logFailure(err error) {
	w.opts.Logger.Error(w.opts.LogMessage, "error", err)
}

func (w *Workflow[V, R]) notify(kind Kind, msg Message) {
	if w.opts.Notifier == nil {
		return
	}
	w.opts.Notifier.Notify(kind, msg.Title, msg.Description)
}

func (w *Workflow[V, R]) refresh() {
	if w.opts.Refresher == nil {
		return
	}
	w.opts.Refresher.Refresh()
}
