package commands

import (
	"errors"
	"fmt"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrSetProductStockCommandIsNotConstructed = errors.New(
		"SetProductStockCommand must be created via NewSetProductStockCommand constructor",
	)
)

// SetProductStockCommand represents a direct inventory correction that
// overwrites a product's stock level, bypassing the debit/credit ledger.
type SetProductStockCommand struct {
	productID int64
	newStock  int

	guard guard.ConstructorGuard
}

// NewSetProductStockCommand creates a command to overwrite a product's stock.
func NewSetProductStockCommand(productID int64, newStock int) (SetProductStockCommand, error) {
	if productID <= 0 {
		return SetProductStockCommand{}, errs.NewValueIsRequiredError("productID")
	}
	if newStock < 0 {
		return SetProductStockCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"newStock",
			fmt.Errorf("%d is negative", newStock),
		)
	}

	return SetProductStockCommand{
		productID: productID,
		newStock:  newStock,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductStockCommand) Validate() error {
	return c.guard.Validate(ErrSetProductStockCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to correct.
func (c SetProductStockCommand) ProductID() int64 {
	return c.productID
}

// NewStock returns the stock level to write.
func (c SetProductStockCommand) NewStock() int {
	return c.newStock
}
