package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetProductMovementQueryHandler aggregates ordered quantities per product
// over a date range, joining order lines with their orders and products.
type GetProductMovementQueryHandler struct {
	db *gorm.DB
}

// NewGetProductMovementQueryHandler creates a handler for product movement queries.
func NewGetProductMovementQueryHandler(db *gorm.DB) GetProductMovementQueryHandler {
	return GetProductMovementQueryHandler{db: db}
}

// Handle executes the query. Products with no movement in the range are
// omitted; results are sorted by total quantity descending.
func (h GetProductMovementQueryHandler) Handle(
	ctx context.Context,
	query GetProductMovementQuery,
) ([]GetProductMovementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	movements := make([]GetProductMovementQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			SUM(l.quantity) AS total_quantity,
			COUNT(DISTINCT o.id) AS order_count
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		JOIN products p ON p.id = l.product_id
		WHERE o.date BETWEEN ? AND ?
		  AND o.status != ?
		GROUP BY p.id, p.name
		ORDER BY total_quantity DESC, p.name
	`, query.From(), query.To(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var movement GetProductMovementQueryResponse
		err = rows.Scan(
			&movement.ProductID,
			&movement.ProductName,
			&movement.TotalQuantity,
			&movement.OrderCount,
		)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}
