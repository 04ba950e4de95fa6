package ports

import (
	"context"
	"time"
)

// OrderChangedEvent describes one accepted status transition, published to
// interested consumers after the owning transaction commits.
// At most one of OrderStatus/DeliveryStatus is set.
type OrderChangedEvent struct {
	OrderID        int64
	OrderStatus    string
	DeliveryStatus string
	Description    string
	OccurredAt     time.Time
}

// OrderEventPublisher publishes order-changed events to an external broker.
// Publishing is best-effort: failures must not fail the business operation
// that produced the event.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
