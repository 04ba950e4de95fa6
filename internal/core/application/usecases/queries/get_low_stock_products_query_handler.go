package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLowStockProductsQueryHandler lists products at or below a stock threshold,
// lowest stock first so the most urgent restocks lead the report.
type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockProductsQueryHandler creates a handler for low-stock queries.
func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]InventoryProductRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]InventoryProductRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			price,
			stock,
			price * stock AS stock_value
		FROM products
		WHERE stock <= ?
		ORDER BY stock, name
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productRow InventoryProductRow
		err = rows.Scan(
			&productRow.ID,
			&productRow.Name,
			&productRow.Category,
			&productRow.Price,
			&productRow.Stock,
			&productRow.StockValue,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, productRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
