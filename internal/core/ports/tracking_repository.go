package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// tracking history. Entries are created once per accepted transition and
// never updated or deleted.
type TrackingRepository interface {
	// Append persists a new tracking event and assigns its generated
	// identifier.
	Append(ctx context.Context, event *tracking.Event) error

	// GetAllByOrderID retrieves all events recorded for the order, ordered by
	// timestamp descending. Returns an empty slice when none exist.
	GetAllByOrderID(ctx context.Context, orderID int64) ([]*tracking.Event, error)
}
