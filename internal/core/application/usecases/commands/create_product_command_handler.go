package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles product registration.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle processes the product creation command and returns the new product's ID.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newProduct, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Stock(), cmd.Category())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newProduct.ID(), nil
}
