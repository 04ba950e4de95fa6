// Package queries contains read-only operations over the record store.
// Implements the query side of the CQRS architecture: handlers bypass the
// aggregates and read flattened rows straight from the database.
package queries

import (
	"errors"
	"time"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetTrackingSnapshotQueryIsNotConstructed = errors.New(
		"GetTrackingSnapshotQuery must be created via NewGetTrackingSnapshotQuery constructor",
	)
)

// GetTrackingSnapshotQuery retrieves the current tracking view of one order:
// its status plus the delivery and carrier details when a delivery exists.
//
// Example:
//
//	query, err := NewGetTrackingSnapshotQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetTrackingSnapshotQueryHandler(db)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get tracking snapshot: %w", err)
//	}
//
//	fmt.Printf("Order %d is %s\n", snapshot.OrderID, snapshot.OrderStatus)
type GetTrackingSnapshotQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetTrackingSnapshotQuery creates a query for the order's tracking view.
func NewGetTrackingSnapshotQuery(orderID int64) (GetTrackingSnapshotQuery, error) {
	if orderID <= 0 {
		return GetTrackingSnapshotQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetTrackingSnapshotQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingSnapshotQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q GetTrackingSnapshotQuery) OrderID() int64 {
	return q.orderID
}

// GetTrackingSnapshotQueryResponse is the flattened tracking view of one
// order. Delivery fields are nil until a delivery has been created for the
// order; CarrierName stays nil until a carrier is assigned.
type GetTrackingSnapshotQueryResponse struct {
	OrderID        int64
	OrderStatus    string
	OrderDate      time.Time
	TotalAmount    decimal.Decimal
	CustomerName   string
	DeliveryID     *int64
	DeliveryStatus *string
	DeliveryDate   *time.Time
	DeliveryCost   *decimal.Decimal
	CarrierName    *string
}
