// Package payment contains the Payment record optionally attached to an
// order. Payments are a record-store collaborator: plain create/read with no
// business rule in this system.
package payment

import (
	"errors"
	"time"

	"ordertrack/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")

// Payment records how one order was paid.
type Payment struct {
	id      int64
	orderID int64
	date    time.Time
	status  string
	method  string

	isConstructed bool
}

// NewPayment creates a payment for the given order, dated now.
func NewPayment(orderID int64, status, method string) (*Payment, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	return &Payment{
		orderID:       orderID,
		date:          time.Now(),
		status:        status,
		method:        method,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(id, orderID int64, date time.Time, status, method string) (*Payment, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		date:          date,
		status:        status,
		method:        method,
		isConstructed: true,
	}, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's identifier (0 until persisted).
func (p *Payment) ID() int64 { return p.id }

// AssignID records the identifier generated by the record store.
func (p *Payment) AssignID(id int64) { p.id = id }

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() int64 { return p.orderID }

// Date returns the payment date.
func (p *Payment) Date() time.Time { return p.date }

// Status returns the payment status.
func (p *Payment) Status() string { return p.status }

// Method returns the payment method.
func (p *Payment) Method() string { return p.method }
