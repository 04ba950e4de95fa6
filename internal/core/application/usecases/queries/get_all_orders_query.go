package queries

import (
	"errors"
	"time"

	"ordertrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves a summary row for every order.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is one order summary row.
type GetAllOrdersQueryResponse struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	Date         time.Time
	Status       string
	TotalAmount  decimal.Decimal
}
