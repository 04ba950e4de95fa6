package delivery

import (
	"errors"
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change is not
// present in the delivery transition table.
var ErrInvalidStatusTransition = errors.New("invalid delivery status transition")

// Status represents the lifecycle state of a delivery:
//
//	PENDING -> ASSIGNED -> PICKED_UP -> IN_TRANSIT -> DELIVERED | FAILED
//
// DELIVERED and FAILED are terminal. The zero value Unknown stands for "no
// status yet": a delivery without a status accepts any first status, which
// covers implicit creation.
//
// The string representations are part of the wire contract and round-trip
// case-sensitively through persistence and the HTTP boundary.
type Status int

const (
	// Unknown represents an absent status. Transitions from Unknown are
	// unconstrained.
	Unknown Status = iota

	// Pending is the initial status of an auto-created delivery, waiting for
	// a carrier.
	Pending

	// Assigned indicates a carrier has been attached.
	Assigned

	// PickedUp indicates the carrier collected the package.
	PickedUp

	// InTransit indicates the package is on its way.
	InTransit

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// Failed indicates the delivery could not be completed. Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Failed:    "FAILED",
	}
}

func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Assigned},
		Assigned:  {PickedUp},
		PickedUp:  {InTransit},
		InTransit: {Delivered, Failed},
		Delivered: {},
		Failed:    {},
	}
}

// StatusFromString parses the wire representation of a delivery status.
// The match is exact and case-sensitive.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks that the Status is one of the defined delivery statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no outgoing transition exists for the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanTransitionTo reports whether the move from s to next is permitted.
// An Unknown current status accepts any valid next status.
func (s Status) CanTransitionTo(next Status) bool {
	if s == Unknown {
		return next.Validate() == nil
	}

	for _, allowed := range transitionTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move against the transition table and returns
// the new status. Returns an error wrapping ErrInvalidStatusTransition when
// the move is not permitted.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, next)
	}

	return next, nil
}
