package commands

import (
	"context"
	"fmt"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tracking"
	"ordertrack/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler handles delivery-status transitions.
//
// An accepted transition is recorded in the tracking history and, for the
// statuses that reflect onto the order (IN_TRANSIT, DELIVERED), projected
// onto the parent order through the order's own transition table. When the
// projected order transition is itself illegal the whole operation fails,
// keeping the two state machines from diverging.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery-status
// updates. The publisher may be nil to disable event publishing.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery status update command.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	if err = existing.ChangeStatus(cmd.NewStatus()); err != nil {
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

	if err = h.projectOntoOrder(ctx, uow, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, uow, "delivery status updated")

	return nil
}

// projectOntoOrder mirrors delivery progress onto the parent order:
// IN_TRANSIT moves the order to IN_DELIVERY, DELIVERED moves it to DELIVERED.
// The projection goes through Order.ChangeStatus so it is subject to the
// order transition table like any other status change.
func (h *UpdateDeliveryStatusCommandHandler) projectOntoOrder(
	ctx context.Context,
	uow DeliveryUoW,
	existing *delivery.Delivery,
) error {
	var projected order.Status
	switch existing.Status() {
	case delivery.InTransit:
		projected = order.InDelivery
	case delivery.Delivered:
		projected = order.Delivered
	default:
		return nil
	}

	parent, err := uow.OrderRepository().Get(ctx, existing.OrderID())
	if err != nil {
		return err
	}

	if err = parent.ChangeStatus(projected); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, parent); err != nil {
		return err
	}

	status := parent.Status()
	event, err := tracking.NewEvent(parent.ID(), &status, nil,
		fmt.Sprintf("Order status updated to %s", status))
	if err != nil {
		return err
	}

	return uow.TrackingRepository().Append(ctx, event)
}
