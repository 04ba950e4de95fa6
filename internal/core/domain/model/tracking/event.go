// Package tracking contains the append-only tracking history.
// An Event is written once per accepted order- or delivery-status transition
// and never mutated or deleted afterwards.
package tracking

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent constructor")

// Event is one immutable tracking history record. At most one of the two
// status snapshots is set, depending on which state machine transitioned.
type Event struct {
	id             int64
	orderID        int64
	orderStatus    *order.Status
	deliveryStatus *delivery.Status
	timestamp      time.Time
	description    string

	isConstructed bool
}

// NewEvent creates a tracking event timestamped at call time.
// Exactly one of orderStatus/deliveryStatus should be non-nil; the caller is
// expected to have verified that the order exists.
func NewEvent(
	orderID int64,
	orderStatus *order.Status,
	deliveryStatus *delivery.Status,
	description string,
) (*Event, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	return &Event{
		orderID:        orderID,
		orderStatus:    orderStatus,
		deliveryStatus: deliveryStatus,
		timestamp:      time.Now(),
		description:    description,
		isConstructed:  true,
	}, nil
}

// RestoreEvent reconstructs an Event from persistence.
func RestoreEvent(
	id, orderID int64,
	orderStatus *order.Status,
	deliveryStatus *delivery.Status,
	timestamp time.Time,
	description string,
) (*Event, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	return &Event{
		id:             id,
		orderID:        orderID,
		orderStatus:    orderStatus,
		deliveryStatus: deliveryStatus,
		timestamp:      timestamp,
		description:    description,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's identifier (0 until persisted).
func (e *Event) ID() int64 { return e.id }

// AssignID records the identifier generated by the record store.
func (e *Event) AssignID(id int64) { e.id = id }

// OrderID returns the tracked order's identifier.
func (e *Event) OrderID() int64 { return e.orderID }

// OrderStatus returns the order-status snapshot, nil when the event records a
// delivery transition.
func (e *Event) OrderStatus() *order.Status { return e.orderStatus }

// DeliveryStatus returns the delivery-status snapshot, nil when the event
// records an order transition.
func (e *Event) DeliveryStatus() *delivery.Status { return e.deliveryStatus }

// Timestamp returns when the transition was recorded.
func (e *Event) Timestamp() time.Time { return e.timestamp }

// Description returns the human-readable transition description.
func (e *Event) Description() string { return e.description }
