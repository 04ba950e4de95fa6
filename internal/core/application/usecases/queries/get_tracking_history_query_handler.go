package queries

import (
	"context"

	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler reads the tracking history of one order.
// The order must exist; an existing order with no recorded transitions yields
// an empty history, not an error.
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for tracking history queries.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle executes the query. Entries come back newest first, ties broken by
// descending ID so same-timestamp entries keep their insertion order reversed.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]GetTrackingHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, query.OrderID()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	entries := make([]GetTrackingHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_status,
			delivery_status,
			timestamp,
			description
		FROM tracking_events
		WHERE order_id = ?
		ORDER BY timestamp DESC, id DESC
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetTrackingHistoryQueryResponse
		err = rows.Scan(
			&entry.ID,
			&entry.OrderStatus,
			&entry.DeliveryStatus,
			&entry.Timestamp,
			&entry.Description,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
