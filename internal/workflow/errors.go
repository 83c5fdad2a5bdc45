package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid is returned by Begin when the form fails validation.
	// The wrapped form.Errors holds the per-field failures.
	ErrInvalid = errors.New("form is invalid")

	// ErrSubmitting is returned by Begin while a submission is already in flight
	ErrSubmitting = errors.New("submission already in progress")

	errNoAction = errors.New("no action configured")
)

// SubmissionFailed is the single failure kind of a dispatched submission,
// whatever the action's underlying cause.
type SubmissionFailed struct {
	Err error
}

func (e *SubmissionFailed) Error() string {
	return fmt.Sprintf("submission failed: %v", e.Err)
}

func (e *SubmissionFailed) Unwrap() error {
	return e.Err
}

// IsSubmissionFailed reports whether err is a SubmissionFailed
func IsSubmissionFailed(err error) bool {
	var sf *SubmissionFailed
	return errors.As(err, &sf)
}
