// Package delivery contains the Delivery aggregate and its status state
// machine. A delivery is the physical fulfillment record for exactly one
// order. It is created implicitly the first time the order reaches
// READY_FOR_DELIVERY and holds a non-owning reference to an optional carrier.
package delivery

import (
	"errors"
	"time"

	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

	// ErrDeliveryNotPending is returned when a carrier is assigned to a
	// delivery that already left PENDING.
	ErrDeliveryNotPending = errors.New("carrier can only be assigned to a pending delivery")
)

// Delivery tracks the fulfillment of one order.
//
// Invariants:
//   - Exactly one delivery per order
//   - A carrier can only be attached while the delivery is PENDING
//   - Status changes only through the transition table (see Status)
type Delivery struct {
	id           int64
	orderID      int64
	carrierID    *int64
	deliveryDate time.Time
	cost         decimal.Decimal

	status        Status
	isConstructed bool
}

// NewDelivery creates a delivery for the given order in PENDING status with
// delivery date = now. This is the auto-creation path driven by the order
// reaching READY_FOR_DELIVERY.
func NewDelivery(orderID int64) (*Delivery, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	return &Delivery{
		orderID:       orderID,
		deliveryDate:  time.Now(),
		cost:          decimal.Zero,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id, orderID int64,
	carrierID *int64,
	deliveryDate time.Time,
	cost decimal.Decimal,
	status Status,
) (*Delivery, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		orderID:       orderID,
		carrierID:     carrierID,
		deliveryDate:  deliveryDate,
		cost:          cost,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's identifier (0 until persisted).
func (d *Delivery) ID() int64 {
	return d.id
}

// AssignID records the identifier generated by the record store.
func (d *Delivery) AssignID(id int64) {
	d.id = id
}

// OrderID returns the fulfilled order's identifier.
func (d *Delivery) OrderID() int64 {
	return d.orderID
}

// CarrierID returns the assigned carrier's identifier, nil when unassigned.
func (d *Delivery) CarrierID() *int64 {
	return d.carrierID
}

// DeliveryDate returns the planned delivery date.
func (d *Delivery) DeliveryDate() time.Time {
	return d.deliveryDate
}

// Cost returns the delivery cost.
func (d *Delivery) Cost() decimal.Decimal {
	return d.cost
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// AssignCarrier attaches the carrier and advances the status to ASSIGNED.
// Fails with ErrDeliveryNotPending unless the current status is PENDING.
func (d *Delivery) AssignCarrier(carrierID int64) error {
	if carrierID <= 0 {
		return errs.NewValueIsRequiredError("carrierID")
	}

	if d.status != Pending {
		return ErrDeliveryNotPending
	}

	newStatus, err := d.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	d.carrierID = &carrierID
	d.status = newStatus
	return nil
}

// ChangeStatus moves the delivery to next, subject to the transition table.
func (d *Delivery) ChangeStatus(next Status) error {
	newStatus, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}
