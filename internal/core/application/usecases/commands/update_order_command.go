package commands

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a full order update. Nil optional fields are
// left unchanged; a non-nil line list replaces the order's line set with the
// restore-then-redebit stock sequence applied atomically.
type UpdateOrderCommand struct {
	orderID    int64
	customerID *int64
	date       *time.Time
	status     *order.Status
	lines      []order.Line

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// A nil lines slice means "keep the current lines"; an empty non-nil slice is
// rejected, since an order must always have at least one line.
func NewUpdateOrderCommand(
	orderID int64,
	customerID *int64,
	date *time.Time,
	status *order.Status,
	lines []LineRequest,
) (UpdateOrderCommand, error) {
	if orderID <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if customerID != nil && *customerID <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("customerID")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	cmd := UpdateOrderCommand{
		orderID:    orderID,
		customerID: customerID,
		date:       date,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}

	if lines != nil {
		if len(lines) == 0 {
			return UpdateOrderCommand{}, errs.NewValueIsRequiredError("order lines")
		}

		domainLines, err := buildLines(lines)
		if err != nil {
			return UpdateOrderCommand{}, err
		}
		cmd.lines = domainLines
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// CustomerID returns the new customer reference, nil when unchanged.
func (c UpdateOrderCommand) CustomerID() *int64 {
	return c.customerID
}

// Date returns the new placement date, nil when unchanged.
func (c UpdateOrderCommand) Date() *time.Time {
	return c.date
}

// Status returns the new status, nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// Lines returns the replacement line set, nil when unchanged.
func (c UpdateOrderCommand) Lines() []order.Line {
	if c.lines == nil {
		return nil
	}
	lines := make([]order.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}
