package order

import (
	"errors"
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change is not
// present in the order transition table.
var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with a static transition table:
//
//	PENDING -> CONFIRMED -> PROCESSING -> READY_FOR_DELIVERY -> IN_DELIVERY -> DELIVERED
//
// CANCELLED is reachable from every non-terminal state. DELIVERED and
// CANCELLED are terminal: no outgoing transition is permitted from either.
//
// The string representations are part of the wire contract and round-trip
// case-sensitively through persistence and the HTTP boundary.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned on order creation.
	Pending

	// Confirmed indicates the order has been accepted.
	Confirmed

	// Processing indicates the order is being prepared.
	Processing

	// ReadyForDelivery indicates preparation is finished. Reaching this status
	// triggers delivery creation if no delivery exists yet for the order.
	ReadyForDelivery

	// InDelivery indicates the order is on its way to the customer.
	InDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled and its stock restored. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:          "PENDING",
		Confirmed:        "CONFIRMED",
		Processing:       "PROCESSING",
		ReadyForDelivery: "READY_FOR_DELIVERY",
		InDelivery:       "IN_DELIVERY",
		Delivered:        "DELIVERED",
		Cancelled:        "CANCELLED",
	}
}

// transitionTable maps each status to the set of statuses it may move to.
// Terminal statuses map to an empty set.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:          {Confirmed, Cancelled},
		Confirmed:        {Processing, Cancelled},
		Processing:       {ReadyForDelivery, Cancelled},
		ReadyForDelivery: {InDelivery, Cancelled},
		InDelivery:       {Delivered, Cancelled},
		Delivered:        {},
		Cancelled:        {},
	}
}

// StatusFromString parses the wire representation of an order status.
// The match is exact and case-sensitive.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the Status is one of the defined order statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no outgoing transition exists for the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the move from s to next is present in the
// transition table. Unknown is not a legal source or target.
func (s Status) CanTransitionTo(next Status) bool {
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
