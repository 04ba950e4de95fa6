package commands

import (
	"errors"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrCreatePaymentCommandIsNotConstructed = errors.New(
		"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
	)
)

// CreatePaymentCommand represents a request to record a payment for an order.
type CreatePaymentCommand struct {
	orderID int64
	status  string
	method  string

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to record a payment.
func NewCreatePaymentCommand(orderID int64, status, method string) (CreatePaymentCommand, error) {
	if orderID <= 0 {
		return CreatePaymentCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return CreatePaymentCommand{
		orderID: orderID,
		status:  status,
		method:  method,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the paid order.
func (c CreatePaymentCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the payment status.
func (c CreatePaymentCommand) Status() string {
	return c.status
}

// Method returns the payment method.
func (c CreatePaymentCommand) Method() string {
	return c.method
}
