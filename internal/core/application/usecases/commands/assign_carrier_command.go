package commands

import (
	"errors"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrAssignCarrierCommandIsNotConstructed = errors.New(
		"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
	)
)

// AssignCarrierCommand represents a request to attach a carrier to a pending
// delivery.
type AssignCarrierCommand struct {
	deliveryID int64
	carrierID  int64

	guard guard.ConstructorGuard
}

// NewAssignCarrierCommand creates a command to assign the carrier to the delivery.
func NewAssignCarrierCommand(deliveryID, carrierID int64) (AssignCarrierCommand, error) {
	if deliveryID <= 0 {
		return AssignCarrierCommand{}, errs.NewValueIsRequiredError("deliveryID")
	}
	if carrierID <= 0 {
		return AssignCarrierCommand{}, errs.NewValueIsRequiredError("carrierID")
	}

	return AssignCarrierCommand{
		deliveryID: deliveryID,
		carrierID:  carrierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c AssignCarrierCommand) DeliveryID() int64 {
	return c.deliveryID
}

// CarrierID returns the carrier to attach.
func (c AssignCarrierCommand) CarrierID() int64 {
	return c.carrierID
}
