// Package customer contains the Customer record referenced by orders.
// Customers are passive: they carry no lifecycle of their own.
package customer

import (
	"errors"

	"ordertrack/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer identifies who placed an order.
type Customer struct {
	id      int64
	name    string
	email   string
	address string

	isConstructed bool
}

// NewCustomer creates a customer. Name is required.
func NewCustomer(name, email, address string) (*Customer, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Customer{
		name:          name,
		email:         email,
		address:       address,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id int64, name, email, address string) (*Customer, error) {
	c, err := NewCustomer(name, email, address)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's identifier (0 until persisted).
func (c *Customer) ID() int64 { return c.id }

// AssignID records the identifier generated by the record store.
func (c *Customer) AssignID(id int64) { c.id = id }

// Name returns the customer name.
func (c *Customer) Name() string { return c.name }

// Email returns the customer email.
func (c *Customer) Email() string { return c.email }

// Address returns the customer address.
func (c *Customer) Address() string { return c.address }
