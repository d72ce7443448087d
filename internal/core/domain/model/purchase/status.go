package purchase

import (
	"errors"
	"fmt"

	"purchase/internal/pkg/errs"
)

// ErrStatusChangeNotAllowed is the unwrap target for StatusTransitionError.
// Use errors.Is against this sentinel to classify rejected status changes.
var ErrStatusChangeNotAllowed = errors.New("status change is not allowed")

// Status represents the payment lifecycle state of a purchase.
// It implements a state machine with a single legal successor per state:
//
//	InProgress ──> Authorized ──> Captured
//
// InProgress is the only initial state, Captured is terminal.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// InProgress is the initial status assigned when a purchase is created.
	// The payment method may only be changed while the purchase is in this status.
	InProgress

	// Authorized indicates the payment has been authorized but not yet captured.
	Authorized

	// Captured indicates the payment has been captured.
	// This is a terminal state with no further transitions allowed.
	Captured
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		InProgress:    "IN_PROGRESS",
		Authorized:    "AUTHORIZED",
		Captured:      "CAPTURED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		InProgress: "IN_PROGRESS",
		Authorized: "AUTHORIZED",
		Captured:   "CAPTURED",
	}
}

// getStatusSuccessors returns the transition table of the payment state machine.
// A status absent from the map has no legal successor: Captured is terminal
// and StatusUnknown is not a state at all.
func getStatusSuccessors() map[Status]Status {
	return map[Status]Status{
		InProgress: Authorized,
		Authorized: Captured,
	}
}

// StatusFromString parses a wire/storage representation into a Status.
// Accepted values are "IN_PROGRESS", "AUTHORIZED" and "CAPTURED".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: InProgress, Authorized, Captured.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("IN_PROGRESS", "AUTHORIZED",
// "CAPTURED") or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the single legal successor of the status.
//
// Returns a StatusTransitionError when no successor exists: Captured is
// terminal, and invalid values have no place in the state machine. The error
// case is explicit so callers never have to remember to check a sentinel
// "no successor" value.
func (s Status) Next() (Status, error) {
	next, ok := getStatusSuccessors()[s]
	if !ok {
		return StatusUnknown, NewStatusTransitionError(s, StatusUnknown)
	}
	return next, nil
}

// TransitionTo validates a requested status change and returns the new status.
//
// The transition succeeds only when requested is exactly the single legal
// successor of the current status. Everything else (the same status, a state
// behind, a multi-step jump, or any move out of the terminal Captured state)
// fails with a StatusTransitionError carrying both statuses.
//
// Example:
//
//	next, err := purchase.InProgress.TransitionTo(purchase.Authorized)
//	// next == Authorized, err == nil
//
//	_, err = purchase.InProgress.TransitionTo(purchase.Captured)
//	// err is a *StatusTransitionError
func (s Status) TransitionTo(requested Status) (Status, error) {
	next, ok := getStatusSuccessors()[s]
	if !ok || next != requested {
		return StatusUnknown, NewStatusTransitionError(s, requested)
	}
	return next, nil
}

// StatusTransitionError reports a rejected payment status change.
// It carries both the current and the requested status for diagnostics.
type StatusTransitionError struct {
	Current   Status
	Requested Status
}

// NewStatusTransitionError creates a StatusTransitionError for the given pair.
func NewStatusTransitionError(current, requested Status) *StatusTransitionError {
	return &StatusTransitionError{
		Current:   current,
		Requested: requested,
	}
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.Current, e.Requested)
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrStatusChangeNotAllowed
}
