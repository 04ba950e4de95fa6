package commands

import (
	"errors"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a request to register a new product.
type CreateProductCommand struct {
	name        string
	description string
	price       decimal.Decimal
	stock       int
	category    string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product.
func NewCreateProductCommand(
	name, description string,
	price decimal.Decimal,
	stock int,
	category string,
) (CreateProductCommand, error) {
	if name == "" {
		return CreateProductCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateProductCommand{
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the product price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// Stock returns the initial stock level.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

// Category returns the product category.
func (c CreateProductCommand) Category() string {
	return c.category
}
