package queries

import (
	"errors"

	"ordertrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetInventoryReportQueryIsNotConstructed = errors.New(
		"GetInventoryReportQuery must be created via NewGetInventoryReportQuery constructor",
	)
)

// GetInventoryReportQuery retrieves every product with its stock level plus
// the total value of the inventory (sum of price times stock).
type GetInventoryReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryReportQuery creates a parameterless inventory report query.
func NewGetInventoryReportQuery() GetInventoryReportQuery {
	return GetInventoryReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryReportQueryIsNotConstructed)
}

// InventoryProductRow is one product line of the inventory report.
type InventoryProductRow struct {
	ID         int64
	Name       string
	Category   string
	Price      decimal.Decimal
	Stock      int
	StockValue decimal.Decimal
}

// GetInventoryReportQueryResponse is the full inventory report.
type GetInventoryReportQueryResponse struct {
	Products   []InventoryProductRow
	TotalValue decimal.Decimal
}
