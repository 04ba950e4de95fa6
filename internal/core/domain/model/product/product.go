// Package product contains the Product aggregate. Stock never goes negative:
// the aggregate rejects any debit that would break the invariant, and the
// stock ledger domain service is the only writer allowed to move stock.
package product

import (
	"errors"
	"fmt"

	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrInsufficientStock is returned when a debit would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is a sellable item with a live price and a stock level.
type Product struct {
	id          int64
	name        string
	description string
	price       decimal.Decimal
	stock       int
	category    string

	isConstructed bool
}

// NewProduct creates a product with the given attributes.
// Name is required; price and stock must not be negative.
func NewProduct(name, description string, price decimal.Decimal, stock int, category string) (*Product, error) {
	p := &Product{
		description:   description,
		category:      category,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(
	id int64,
	name, description string,
	price decimal.Decimal,
	stock int,
	category string,
) (*Product, error) {
	p, err := NewProduct(name, description, price, stock, category)
	if err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's identifier (0 until persisted).
func (p *Product) ID() int64 {
	return p.id
}

// AssignID records the identifier generated by the record store.
func (p *Product) AssignID(id int64) {
	p.id = id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current (live) price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the quantity available for new orders. Never negative.
func (p *Product) Stock() int {
	return p.stock
}

// Category returns the product category.
func (p *Product) Category() string {
	return p.category
}

// DebitStock subtracts quantity from stock.
// Fails with ErrInsufficientStock when the result would be negative.
func (p *Product) DebitStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if p.stock < quantity {
		return fmt.Errorf("%w for product %q: have %d, need %d", ErrInsufficientStock, p.name, p.stock, quantity)
	}

	p.stock -= quantity
	return nil
}

// CreditStock adds quantity back to stock. No upper bound.
func (p *Product) CreditStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	p.stock += quantity
	return nil
}

// SetStock overwrites the stock level for direct inventory correction.
// Fails when newStock is negative.
func (p *Product) SetStock(newStock int) error {
	return p.setStock(newStock)
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", price),
		)
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("%d is negative", stock),
		)
	}
	p.stock = stock
	return nil
}
