package commands

import (
	"context"
	"fmt"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tracking"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement.
//
// The whole sequence runs in one transaction: the referenced customer and
// products are verified, the lines are priced from current product prices,
// stock is debited line by line (the first insufficiency aborts with no
// partial effect), the order is persisted in PENDING status and the initial
// tracking entry is appended. The order-changed event is published only after
// a successful commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.StockLedger
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The publisher may be nil to disable event publishing.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewStockLedger(),
		publisher:  publisher,
	}
}

// Handle processes the order placement command and returns the new order's
// identifier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, errs.NewObjectNotFoundError("customer", cmd.CustomerID())
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), cmd.Lines())
	if err != nil {
		return 0, err
	}

	products, err := lockProductsForLines(ctx, uow.ProductRepository(), newOrder.Lines())
	if err != nil {
		return 0, err
	}

	if err = newOrder.Price(productPrices(products)); err != nil {
		return 0, err
	}

	if err = h.ledger.Debit(products, newOrder.Lines()); err != nil {
		return 0, err
	}

	if err = persistProducts(ctx, uow.ProductRepository(), products); err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	status := newOrder.Status()
	event, err := tracking.NewEvent(newOrder.ID(), &status, nil,
		fmt.Sprintf("Order status updated to %s", status))
	if err != nil {
		return 0, err
	}

	if err = uow.TrackingRepository().Append(ctx, event); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	publishOrderChanged(ctx, h.publisher, uow, "order created")

	return newOrder.ID(), nil
}
