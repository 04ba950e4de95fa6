package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product and assigns its generated identifier.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by identifier.
	// Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetForUpdate retrieves a product with an exclusive row lock held until
	// the surrounding transaction ends. Order operations use it to serialize
	// concurrent stock debits against the same product.
	GetForUpdate(ctx context.Context, id int64) (*product.Product, error)

	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Exists reports whether a product with the identifier is stored.
	Exists(ctx context.Context, id int64) (bool, error)
}
