package order

import (
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition classifies illegal status-transition rejections
// for errors.Is.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// InvalidStatusTransitionError rejects a status update whose edge is not in
// the transition table, or whose requested label is unrecognized. It carries
// the current status and the raw requested label so the client can react
// without re-querying the order. Nothing has been mutated when this error is
// returned.
type InvalidStatusTransitionError struct {
	From      Status
	Requested string
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError.
// Requested is the raw label the caller asked for, which may not map to any
// legal status.
func NewInvalidStatusTransitionError(from Status, requested string) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, Requested: requested}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidStatusTransition, e.From, e.Requested)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}
