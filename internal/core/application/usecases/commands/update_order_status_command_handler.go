package commands

import (
	"context"
	"fmt"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tracking"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order-status transitions requested
// through the tracking façade.
//
// Side effects per accepted transition:
//   - a tracking history entry is appended
//   - READY_FOR_DELIVERY ensures exactly one delivery exists for the order,
//     creating it in PENDING status dated now when absent
//   - CANCELLED restores every line's stock, same as an explicit cancel
type UpdateOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	ledger     services.StockLedger
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order-status
// updates. The publisher may be nil to disable event publishing.
func NewUpdateOrderStatusCommandHandler(
	uowFactory StatusUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewStockLedger(),
		publisher:  publisher,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	existing, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if cmd.NewStatus() == order.Cancelled {
		if err = h.restoreStock(ctx, uow, existing); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, existing); err != nil {
		return err
	}

	status := existing.Status()
	event, err := tracking.NewEvent(existing.ID(), &status, nil,
		fmt.Sprintf("Order status updated to %s", status))
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Append(ctx, event); err != nil {
		return err
	}

	if cmd.NewStatus() == order.ReadyForDelivery {
		if err = h.ensureDeliveryExists(ctx, uow, existing.ID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, uow, "order status updated")

	return nil
}

// ensureDeliveryExists is the declared side effect of the READY_FOR_DELIVERY
// transition: at most one delivery per order, created with PENDING status and
// delivery date = now.
func (h *UpdateOrderStatusCommandHandler) ensureDeliveryExists(
	ctx context.Context,
	uow StatusUoW,
	orderID int64,
) error {
	exists, err := uow.DeliveryRepository().ExistsForOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	newDelivery, err := delivery.NewDelivery(orderID)
	if err != nil {
		return err
	}

	return uow.DeliveryRepository().Add(ctx, newDelivery)
}

func (h *UpdateOrderStatusCommandHandler) restoreStock(
	ctx context.Context,
	uow StatusUoW,
	existing *order.Order,
) error {
	products, err := lockProductsForLines(ctx, uow.ProductRepository(), existing.Lines())
	if err != nil {
		return err
	}

	if err = h.ledger.Restore(products, existing.Lines()); err != nil {
		return err
	}

	return persistProducts(ctx, uow.ProductRepository(), products)
}
