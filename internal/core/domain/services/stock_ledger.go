// Package services contains domain services that coordinate invariants
// spanning more than one aggregate.
package services

import (
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/pkg/errs"
)

// StockLedger applies and reverses order-line quantity deltas against product
// stock. It is the only writer allowed to move stock, which keeps the
// stock >= 0 invariant in one place.
//
// The ledger works on products already loaded (and locked) by the caller; the
// caller persists the mutated products afterwards inside the same unit of
// work, so a ledger call plus its persist is all-or-nothing per order
// operation.
//
// Example:
//
//	ledger := services.NewStockLedger()
//	if err := ledger.Debit(products, ord.Lines()); err != nil {
//	    // products are unchanged, safe to abort
//	    return err
//	}
type StockLedger struct{}

// NewStockLedger creates a StockLedger instance.
func NewStockLedger() StockLedger {
	return StockLedger{}
}

// Debit subtracts each line's quantity from its product's stock, checking
// line by line. The first product with insufficient stock aborts the whole
// call: debits already applied in the same call are compensated with restores
// and product.ErrInsufficientStock is returned, leaving every product at its
// prior stock level.
//
// A line whose product is missing from the map fails with a not-found error,
// compensated the same way.
func (StockLedger) Debit(products map[int64]*product.Product, lines []order.Line) error {
	applied := make([]order.Line, 0, len(lines))

	for _, line := range lines {
		p, ok := products[line.ProductID()]
		if !ok {
			rollbackDebits(products, applied)
			return errs.NewObjectNotFoundError("product", line.ProductID())
		}

		if err := p.DebitStock(line.Quantity()); err != nil {
			rollbackDebits(products, applied)
			return err
		}

		applied = append(applied, line)
	}

	return nil
}

// Restore adds each line's quantity back to its product's stock. Used when an
// order is cancelled or when its line set is replaced. Lines whose product no
// longer exists are skipped rather than failing the restore.
func (StockLedger) Restore(products map[int64]*product.Product, lines []order.Line) error {
	for _, line := range lines {
		p, ok := products[line.ProductID()]
		if !ok {
			continue
		}

		if err := p.CreditStock(line.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

func rollbackDebits(products map[int64]*product.Product, applied []order.Line) {
	for _, line := range applied {
		if p, ok := products[line.ProductID()]; ok {
			// credit cannot fail for a quantity that was just debited
			_ = p.CreditStock(line.Quantity())
		}
	}
}
