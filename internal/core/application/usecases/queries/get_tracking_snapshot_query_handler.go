package queries

import (
	"context"

	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTrackingSnapshotQueryHandler builds the tracking view of one order by
// joining the order with its customer and, when present, its delivery and
// carrier in a single read.
type GetTrackingSnapshotQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingSnapshotQueryHandler creates a handler for tracking snapshot queries.
func NewGetTrackingSnapshotQueryHandler(db *gorm.DB) GetTrackingSnapshotQueryHandler {
	return GetTrackingSnapshotQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist; a missing delivery or carrier is not an error and leaves
// the corresponding fields nil.
func (h GetTrackingSnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingSnapshotQuery,
) (GetTrackingSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingSnapshotQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.date,
			o.total_amount,
			c.name,
			d.id,
			d.status,
			d.delivery_date,
			d.cost,
			ca.name
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN deliveries d ON d.order_id = o.id
		LEFT JOIN carriers ca ON ca.id = d.carrier_id
		WHERE o.id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return GetTrackingSnapshotQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetTrackingSnapshotQueryResponse{}, err
		}
		return GetTrackingSnapshotQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var snapshot GetTrackingSnapshotQueryResponse
	err = rows.Scan(
		&snapshot.OrderID,
		&snapshot.OrderStatus,
		&snapshot.OrderDate,
		&snapshot.TotalAmount,
		&snapshot.CustomerName,
		&snapshot.DeliveryID,
		&snapshot.DeliveryStatus,
		&snapshot.DeliveryDate,
		&snapshot.DeliveryCost,
		&snapshot.CarrierName,
	)
	if err != nil {
		return GetTrackingSnapshotQueryResponse{}, err
	}

	return snapshot, rows.Err()
}
