// Package carrier contains the Carrier record attached to deliveries.
// Carriers are passive references with no lifecycle coupling beyond being
// assigned to a delivery.
package carrier

import (
	"errors"

	"ordertrack/internal/pkg/errs"
)

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through NewCarrier or RestoreCarrier.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier constructor")

// Carrier identifies who physically transports a delivery.
type Carrier struct {
	id    int64
	name  string
	phone string
	note  string

	isConstructed bool
}

// NewCarrier creates a carrier. Name is required.
func NewCarrier(name, phone, note string) (*Carrier, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Carrier{
		name:          name,
		phone:         phone,
		note:          note,
		isConstructed: true,
	}, nil
}

// RestoreCarrier reconstructs a Carrier from persistence.
func RestoreCarrier(id int64, name, phone, note string) (*Carrier, error) {
	c, err := NewCarrier(name, phone, note)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Carrier was created through a constructor.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// ID returns the carrier's identifier (0 until persisted).
func (c *Carrier) ID() int64 { return c.id }

// AssignID records the identifier generated by the record store.
func (c *Carrier) AssignID(id int64) { c.id = id }

// Name returns the carrier name.
func (c *Carrier) Name() string { return c.name }

// Phone returns the carrier phone number.
func (c *Carrier) Phone() string { return c.phone }

// Note returns the free-form note attached to the carrier.
func (c *Carrier) Note() string { return c.note }
