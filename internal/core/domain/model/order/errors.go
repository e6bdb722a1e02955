package order

import (
	"errors"
	"fmt"

	"deliveryapi/internal/pkg/errs"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTerminalState     = errors.New("order is in a terminal status")
	ErrEmptyOrder        = errors.New("order has no lines")
	ErrAlreadyCanceled   = errors.New("order is already canceled")
	ErrUnknownStatus     = errors.New("unknown order status")
)

// InvalidTransitionError reports a well-formed status that is not reachable
// from the current one.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TerminalStateError reports an attempt to leave Delivered or Canceled.
type TerminalStateError struct {
	State Status
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTerminalState, e.State)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// UnknownStatusError is returned by ParseStatus for labels outside the enum.
// It is a value error, distinct from an invalid transition.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownStatus, e.Value)
}

func (e *UnknownStatusError) Unwrap() []error {
	return []error{ErrUnknownStatus, errs.ErrValueIsInvalid}
}
