package queries

import (
	"errors"
	"fmt"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
		"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
	)
)

// GetLowStockProductsQuery retrieves products whose stock has fallen below a
// threshold. A threshold of zero means out-of-stock products only.
type GetLowStockProductsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a query for products at or below threshold.
func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	if threshold < 0 {
		return GetLowStockProductsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is negative", threshold),
		)
	}

	return GetLowStockProductsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// Threshold returns the stock level at or below which a product is reported.
func (q GetLowStockProductsQuery) Threshold() int {
	return q.threshold
}
