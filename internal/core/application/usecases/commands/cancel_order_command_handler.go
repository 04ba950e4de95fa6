package commands

import (
	"context"
	"fmt"

	"ordertrack/internal/core/domain/model/tracking"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
//
// Cancelling restores every line's quantity to its product's stock and moves
// the order to CANCELLED, in one transaction. Orders already DELIVERED or
// CANCELLED fail the status transition and nothing is restored.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.StockLedger
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// The publisher may be nil to disable event publishing.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewStockLedger(),
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	// Transition is guarded first: a terminal order must fail before any
	// stock effect is attempted.
	if err = existing.Cancel(); err != nil {
		return err
	}

	products, err := lockProductsForLines(ctx, uow.ProductRepository(), existing.Lines())
	if err != nil {
		return err
	}

	if err = h.ledger.Restore(products, existing.Lines()); err != nil {
		return err
	}

	if err = persistProducts(ctx, uow.ProductRepository(), products); err != nil {
		return err
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, uow, "order cancelled")

	return nil
}
