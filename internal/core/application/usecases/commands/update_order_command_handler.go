package commands

import (
	"context"
	"fmt"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/domain/model/tracking"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles full order updates.
//
// Stock bookkeeping rules, applied atomically per order:
//   - status change to CANCELLED restores stock for the current lines
//   - a replacement line set restores the old lines' stock, re-prices the
//     order and debits the new lines; no debit occurs on a cancelled order
//
// Either every line update and its stock effect lands together, or none does.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.StockLedger
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
// The publisher may be nil to disable event publishing.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewStockLedger(),
		publisher:  publisher,
	}
}

// Handle processes the order update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	oldLines := existing.Lines()
	statusChanged := false
	oldStockRestored := false

	// Lock every product the update can touch up front, old and new lines
	// alike, so stock effects of this order serialize against concurrent
	// operations on the same products.
	products, err := h.lockTouchedProducts(ctx, uow, existing, cmd)
	if err != nil {
		return err
	}

	if cmd.Status() != nil && *cmd.Status() != existing.Status() {
		newStatus := *cmd.Status()

		if newStatus == order.Cancelled && !existing.IsCancelled() {
			if err = h.ledger.Restore(products, oldLines); err != nil {
				return err
			}
			oldStockRestored = true
		}

		if err = existing.ChangeStatus(newStatus); err != nil {
			return err
		}
		statusChanged = true
	}

	if cmd.CustomerID() != nil {
		exists, existsErr := uow.CustomerRepository().Exists(ctx, *cmd.CustomerID())
		if existsErr != nil {
			return existsErr
		}
		if !exists {
			return errs.NewObjectNotFoundError("customer", *cmd.CustomerID())
		}

		if err = existing.ChangeCustomer(*cmd.CustomerID()); err != nil {
			return err
		}
	}

	if cmd.Date() != nil {
		existing.ChangeDate(*cmd.Date())
	}

	if cmd.Lines() != nil {
		if !existing.IsCancelled() && !oldStockRestored {
			if err = h.ledger.Restore(products, oldLines); err != nil {
				return err
			}
		}

		if err = existing.ReplaceLines(cmd.Lines()); err != nil {
			return err
		}

		if err = existing.Price(productPrices(products)); err != nil {
			return err
		}

		if !existing.IsCancelled() {
			if err = h.ledger.Debit(products, existing.Lines()); err != nil {
				return err
			}
		}
	}

	if err = persistProducts(ctx, uow.ProductRepository(), products); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, existing); err != nil {
		return err
	}

	if statusChanged {
		status := existing.Status()
		event, eventErr := tracking.NewEvent(existing.ID(), &status, nil,
			fmt.Sprintf("Order status updated to %s", status))
		if eventErr != nil {
			return eventErr
		}

		if err = uow.TrackingRepository().Append(ctx, event); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, uow, "order updated")

	return nil
}

func (h *UpdateOrderCommandHandler) lockTouchedProducts(
	ctx context.Context,
	uow OrderUoW,
	existing *order.Order,
	cmd UpdateOrderCommand,
) (map[int64]*product.Product, error) {
	touched := existing.Lines()
	if cmd.Lines() != nil {
		touched = append(touched, cmd.Lines()...)
	}

	return lockProductsForLines(ctx, uow.ProductRepository(), touched)
}
