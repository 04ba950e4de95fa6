package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is one product-quantity-price entry within an order.
// The unit price is a snapshot taken when the order's lines were last
// (re)priced, not the live product price.
type Line struct {
	id        int64
	productID int64
	quantity  int
	unitPrice decimal.Decimal
}

// NewLine creates an unpriced order line. The unit price is assigned later
// when the owning order is priced against current product prices.
func NewLine(productID int64, quantity int) (Line, error) {
	if productID <= 0 {
		return Line{}, errs.NewValueIsRequiredError("productID")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Line{
		productID: productID,
		quantity:  quantity,
	}, nil
}

// RestoreLine reconstructs a line from persistence, including its priced state.
func RestoreLine(id, productID int64, quantity int, unitPrice decimal.Decimal) (Line, error) {
	line, err := NewLine(productID, quantity)
	if err != nil {
		return Line{}, err
	}

	line.id = id
	line.unitPrice = unitPrice
	return line, nil
}

// ID returns the line's identifier (0 until persisted).
func (l Line) ID() int64 {
	return l.id
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() int64 {
	return l.productID
}

// Quantity returns the ordered quantity. Always positive.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken at pricing time.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Subtotal returns unit price multiplied by quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
