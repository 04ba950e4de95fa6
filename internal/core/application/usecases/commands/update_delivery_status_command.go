package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
)

// UpdateDeliveryStatusCommand represents a request to advance a delivery's
// status.
type UpdateDeliveryStatusCommand struct {
	deliveryID int64
	newStatus  delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to move the delivery to
// newStatus.
func NewUpdateDeliveryStatusCommand(deliveryID int64, newStatus delivery.Status) (UpdateDeliveryStatusCommand, error) {
	if deliveryID <= 0 {
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsRequiredError("deliveryID")
	}
	if err := newStatus.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		deliveryID: deliveryID,
		newStatus:  newStatus,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c UpdateDeliveryStatusCommand) DeliveryID() int64 {
	return c.deliveryID
}

// NewStatus returns the requested target status.
func (c UpdateDeliveryStatusCommand) NewStatus() delivery.Status {
	return c.newStatus
}
