package queries

import (
	"errors"
	"fmt"
	"time"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetProductMovementQueryIsNotConstructed = errors.New(
		"GetProductMovementQuery must be created via NewGetProductMovementQuery constructor",
	)
)

// GetProductMovementQuery aggregates, per product, the quantity ordered within
// a date range. Cancelled orders are excluded since their stock was restored.
type GetProductMovementQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetProductMovementQuery creates a movement query over [from, to].
func NewGetProductMovementQuery(from, to time.Time) (GetProductMovementQuery, error) {
	if from.IsZero() {
		return GetProductMovementQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetProductMovementQuery{}, errs.NewValueIsRequiredError("to")
	}
	if to.Before(from) {
		return GetProductMovementQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"to",
			fmt.Errorf("%s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339)),
		)
	}

	return GetProductMovementQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductMovementQuery) Validate() error {
	return q.guard.Validate(ErrGetProductMovementQueryIsNotConstructed)
}

// From returns the range start (inclusive).
func (q GetProductMovementQuery) From() time.Time {
	return q.from
}

// To returns the range end (inclusive).
func (q GetProductMovementQuery) To() time.Time {
	return q.to
}

// GetProductMovementQueryResponse is one product's movement within the range.
type GetProductMovementQueryResponse struct {
	ProductID     int64
	ProductName   string
	TotalQuantity int
	OrderCount    int
}
