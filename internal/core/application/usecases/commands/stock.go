package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/ports"

	"github.com/shopspring/decimal"
)

// lockProductsForLines loads every product referenced by the lines with an
// exclusive row lock, so the validate-debit-persist sequence is serialized
// against concurrent order operations touching the same products.
// A missing product fails with the repository's not-found error.
func lockProductsForLines(
	ctx context.Context,
	repo ports.ProductRepository,
	lines []order.Line,
) (map[int64]*product.Product, error) {
	products := make(map[int64]*product.Product, len(lines))

	for _, line := range lines {
		if _, ok := products[line.ProductID()]; ok {
			continue
		}

		p, err := repo.GetForUpdate(ctx, line.ProductID())
		if err != nil {
			return nil, err
		}
		products[line.ProductID()] = p
	}

	return products, nil
}

// persistProducts writes back every locked product's stock level.
func persistProducts(
	ctx context.Context,
	repo ports.ProductRepository,
	products map[int64]*product.Product,
) error {
	for _, p := range products {
		if err := repo.Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// productPrices extracts the current price per product identifier, used to
// (re)price an order's lines.
func productPrices(products map[int64]*product.Product) map[int64]decimal.Decimal {
	prices := make(map[int64]decimal.Decimal, len(products))
	for id, p := range products {
		prices[id] = p.Price()
	}
	return prices
}
