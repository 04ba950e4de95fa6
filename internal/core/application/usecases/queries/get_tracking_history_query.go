package queries

import (
	"errors"
	"time"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
		"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
	)
)

// GetTrackingHistoryQuery retrieves the full tracking history of one order,
// newest entry first.
type GetTrackingHistoryQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query for the order's tracking history.
func NewGetTrackingHistoryQuery(orderID int64) (GetTrackingHistoryQuery, error) {
	if orderID <= 0 {
		return GetTrackingHistoryQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetTrackingHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q GetTrackingHistoryQuery) OrderID() int64 {
	return q.orderID
}

// GetTrackingHistoryQueryResponse is one tracking history entry. Exactly one
// of OrderStatus/DeliveryStatus is set, depending on which state machine
// transitioned.
type GetTrackingHistoryQueryResponse struct {
	ID             int64
	OrderStatus    *string
	DeliveryStatus *string
	Timestamp      time.Time
	Description    string
}
