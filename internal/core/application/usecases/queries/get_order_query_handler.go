package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its lines.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var orderResp GetOrderQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			date,
			status,
			total_amount
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&orderResp.ID,
		&orderResp.CustomerID,
		&orderResp.Date,
		&orderResp.Status,
		&orderResp.TotalAmount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderResp.Lines = make([]GetOrderQueryLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrderQueryLineResponse
		err = rows.Scan(
			&line.ID,
			&line.ProductID,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
		orderResp.Lines = append(orderResp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return orderResp, nil
}
