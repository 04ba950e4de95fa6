package commands

import (
	"context"
	"fmt"

	"ordertrack/internal/core/domain/model/tracking"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// AssignCarrierCommandHandler handles carrier assignment.
//
// A carrier can only be attached while the delivery is PENDING; assignment
// advances the delivery to ASSIGNED and records the transition in the
// tracking history.
type AssignCarrierCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAssignCarrierCommandHandler creates a handler for carrier assignment.
// The publisher may be nil to disable event publishing.
func NewAssignCarrierCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.OrderEventPublisher,
) AssignCarrierCommandHandler {
	return AssignCarrierCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the carrier assignment command.
func (h *AssignCarrierCommandHandler) Handle(ctx context.Context, cmd AssignCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	carrierExists, err := uow.CarrierRepository().Exists(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}
	if !carrierExists {
		return errs.NewObjectNotFoundError("carrier", cmd.CarrierID())
	}

	if err = existing.AssignCarrier(cmd.CarrierID()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, existing); err != nil {
		return err
	}

	status := existing.Status()
	event, err := tracking.NewEvent(existing.OrderID(), nil, &status,
		fmt.Sprintf("Delivery status updated to %s", status))
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Append(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, uow, "carrier assigned")

	return nil
}
