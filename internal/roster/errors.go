package roster

import "errors"

var (
	// ErrNotOpen is returned when submitting an editor that is not open
	ErrNotOpen = errors.New("editor is not open")
	// ErrSubmitting is returned when a submission is already in flight
	ErrSubmitting = errors.New("editor is already submitting")
	// ErrNothingPending is returned when confirming with no deletion requested
	ErrNothingPending = errors.New("no deletion pending")
)
