package order

import (
	"fmt"
	"slices"
	"strings"

	"deliveryapi/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Created ──> Confirmed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──────> Canceled
//
// Pending is a legacy initial state found in stored orders. It is never
// produced by NewOrder or by a transition, and leaves exactly like Created.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	Created
	Pending
	Confirmed
	Preparing
	OutForDelivery
	Delivered
	Canceled
)

var statusNames = map[Status]string{
	Created:        "CREATED",
	Pending:        "PENDING",
	Confirmed:      "CONFIRMED",
	Preparing:      "PREPARING",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Canceled:       "CANCELED",
}

var statusDescriptions = map[Status]string{
	Created:        "Created",
	Pending:        "Pending",
	Confirmed:      "Confirmed",
	Preparing:      "Preparing",
	OutForDelivery: "Out for delivery",
	Delivered:      "Delivered",
	Canceled:       "Canceled",
}

// transitions lists the statuses reachable from each non-terminal status.
// Pending is resolved to Created before lookup.
var transitions = map[Status][]Status{
	Created:        {Confirmed, Canceled},
	Confirmed:      {Preparing, Canceled},
	Preparing:      {OutForDelivery, Canceled},
	OutForDelivery: {Delivered},
	Delivered:      nil,
	Canceled:       nil,
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, Pending, Confirmed, Preparing, OutForDelivery, Delivered, Canceled}
}

// ParseStatus resolves a free-form label case-insensitively. It accepts the
// wire names ("out_for_delivery") and tolerates spaces or dashes in place of
// underscores ("Out for delivery"). It never checks transitions.
func ParseStatus(label string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	for status, name := range statusNames {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, &UnknownStatusError{Value: label}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Description returns the human readable label.
func (s Status) Description() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return "Unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// AllowedTransitions returns the statuses reachable from s.
func (s Status) AllowedTransitions() []Status {
	return slices.Clone(transitions[s.effective()])
}

// CanTransitionTo reports whether next is reachable from s.
func (s Status) CanTransitionTo(next Status) bool {
	return ValidateTransition(s, next) == nil
}

// TransitionTo validates the move to next and returns next on success.
//
// Example:
//
//	newStatus, err := o.Status().TransitionTo(order.Preparing)
//	if err != nil {
//	    return err
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := ValidateTransition(s, next); err != nil {
		return Unknown, err
	}
	return next, nil
}

// ValidateTransition succeeds iff requested is in the allowed set of current.
// Leaving Delivered or Canceled fails with *TerminalStateError; any other
// unlisted pair, self transitions included, fails with *InvalidTransitionError.
func ValidateTransition(current, requested Status) error {
	if err := current.Validate(); err != nil {
		return err
	}
	if current.IsTerminal() {
		return &TerminalStateError{State: current}
	}
	if !slices.Contains(transitions[current.effective()], requested) {
		return &InvalidTransitionError{From: current, To: requested}
	}
	return nil
}

// effective maps the legacy Pending status onto Created.
func (s Status) effective() Status {
	if s == Pending {
		return Created
	}
	return s
}
