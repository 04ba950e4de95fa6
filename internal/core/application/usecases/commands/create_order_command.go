package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// LineRequest is one requested product-quantity pair for order creation or
// line replacement.
type LineRequest struct {
	ProductID int64
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []LineRequest{{ProductID: 7, Quantity: 3}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	customerID int64
	lines      []order.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer reference is present, the line list is
// non-empty and every quantity is positive.
func NewCreateOrderCommand(customerID int64, lines []LineRequest) (CreateOrderCommand, error) {
	if customerID <= 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("customerID")
	}
	if len(lines) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("order lines")
	}

	domainLines, err := buildLines(lines)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	cmd := CreateOrderCommand{
		customerID: customerID,
		lines:      domainLines,
		guard:      guard.NewConstructorGuard(),
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Lines returns the requested order lines (unpriced).
func (c CreateOrderCommand) Lines() []order.Line {
	lines := make([]order.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func buildLines(requests []LineRequest) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(requests))
	for _, req := range requests {
		line, err := order.NewLine(req.ProductID, req.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
