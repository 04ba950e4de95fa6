package commands

import (
	"errors"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
)

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct {
	name    string
	email   string
	address string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(name, email, address string) (CreateCustomerCommand, error) {
	if name == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCustomerCommand{
		name:    name,
		email:   email,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer email.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Address returns the customer address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}
