package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/delivery"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery and assigns its generated identifier.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by identifier.
	// Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id int64) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery attached to an order.
	// Returns errs.ObjectNotFoundError when the order has no delivery yet.
	GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error)

	// ExistsForOrder reports whether a delivery exists for the order.
	// At most one delivery per order is ever created.
	ExistsForOrder(ctx context.Context, orderID int64) (bool, error)

	// GetAll retrieves every delivery.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)
}
