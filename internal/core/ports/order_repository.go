// Package ports defines the contracts between the core and its collaborators:
// per-entity record-store repositories, the unit of work, and the outbound
// event publisher. Infrastructure adapters implement these interfaces,
// keeping the core free of persistence and transport concerns.
package ports

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its line set.
type OrderRepository interface {
	// Add persists a new order and assigns its generated identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, replacing its line set.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by identifier.
	// Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves every order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByDateRange retrieves orders placed within [start, end].
	// Consumed by reporting collaborators (product movement).
	GetAllByDateRange(ctx context.Context, start, end time.Time) ([]*order.Order, error)

	// Exists reports whether an order with the identifier is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes an order unconditionally. Deletion bypasses lifecycle
	// rules and performs no stock interaction.
	Delete(ctx context.Context, id int64) error
}
