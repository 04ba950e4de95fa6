package commands

import (
	"context"
)

// SetProductStockCommandHandler handles direct stock corrections. The row
// lock serializes the overwrite against concurrent order debits.
type SetProductStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductStockCommandHandler creates a handler for stock corrections.
func NewSetProductStockCommandHandler(uowFactory ProductUoWFactory) SetProductStockCommandHandler {
	return SetProductStockCommandHandler{uowFactory: uowFactory}
}

// Handle processes the stock correction command.
func (h *SetProductStockCommandHandler) Handle(ctx context.Context, cmd SetProductStockCommand) error {
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

	existing, err := uow.ProductRepository().GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = existing.SetStock(cmd.NewStock()); err != nil {
		return err
	}

	if err = uow.ProductRepository().Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
