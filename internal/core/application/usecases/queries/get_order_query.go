package queries

import (
	"errors"
	"time"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order together with its lines.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderQueryLineResponse is one order line row.
type GetOrderQueryLineResponse struct {
	ID        int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// GetOrderQueryResponse is one order with its lines.
type GetOrderQueryResponse struct {
	ID          int64
	CustomerID  int64
	Date        time.Time
	Status      string
	TotalAmount decimal.Decimal
	Lines       []GetOrderQueryLineResponse
}
