package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetInventoryReportQueryHandler builds the inventory report from the product
// table. Per-row stock value is computed in SQL so the report stays one read.
type GetInventoryReportQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryReportQueryHandler creates a handler for inventory report queries.
func NewGetInventoryReportQueryHandler(db *gorm.DB) GetInventoryReportQueryHandler {
	return GetInventoryReportQueryHandler{db: db}
}

// Handle executes the query. Products are sorted by name; an empty catalogue
// yields an empty report with a zero total.
func (h GetInventoryReportQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryReportQuery,
) (GetInventoryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventoryReportQueryResponse{}, err
	}

	report := GetInventoryReportQueryResponse{
		Products:   make([]InventoryProductRow, 0),
		TotalValue: decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			price,
			stock,
			price * stock AS stock_value
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return GetInventoryReportQueryResponse{}, err
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
			return GetInventoryReportQueryResponse{}, err
		}
		report.Products = append(report.Products, productRow)
		report.TotalValue = report.TotalValue.Add(productRow.StockValue)
	}

	if err = rows.Err(); err != nil {
		return GetInventoryReportQueryResponse{}, err
	}

	return report, nil
}
