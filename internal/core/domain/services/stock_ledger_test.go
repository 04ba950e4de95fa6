package services_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, id int64, name string, stock int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, name, "", decimal.Zero, stock, "")
	require.NoError(t, err)
	return p
}

func newLine(t *testing.T, productID int64, quantity int) order.Line {
	t.Helper()
	line, err := order.NewLine(productID, quantity)
	require.NoError(t, err)
	return line
}

func TestStockLedgerDebit(t *testing.T) {
	ledger := services.NewStockLedger()

	t.Run("should debit every line", func(t *testing.T) {
		products := map[int64]*product.Product{
			1: newProduct(t, 1, "Keyboard", 10),
			2: newProduct(t, 2, "Mouse", 5),
		}
		lines := []order.Line{newLine(t, 1, 4), newLine(t, 2, 5)}

		err := ledger.Debit(products, lines)

		require.NoError(t, err)
		assert.Equal(t, 6, products[1].Stock())
		assert.Equal(t, 0, products[2].Stock())
	})

	t.Run("should compensate applied debits when a later line fails", func(t *testing.T) {
		products := map[int64]*product.Product{
			1: newProduct(t, 1, "Keyboard", 10),
			2: newProduct(t, 2, "Mouse", 2),
		}
		lines := []order.Line{newLine(t, 1, 4), newLine(t, 2, 3)}

		err := ledger.Debit(products, lines)

		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, 10, products[1].Stock())
		assert.Equal(t, 2, products[2].Stock())
	})

	t.Run("should fail with not found when a product is missing", func(t *testing.T) {
		products := map[int64]*product.Product{
			1: newProduct(t, 1, "Keyboard", 10),
		}
		lines := []order.Line{newLine(t, 1, 4), newLine(t, 99, 1)}

		err := ledger.Debit(products, lines)

		require.Error(t, err)
		assert.Equal(t, 10, products[1].Stock())
	})

	t.Run("should accumulate quantities across lines of the same product", func(t *testing.T) {
		products := map[int64]*product.Product{
			1: newProduct(t, 1, "Keyboard", 5),
		}
		lines := []order.Line{newLine(t, 1, 3), newLine(t, 1, 3)}

		err := ledger.Debit(products, lines)

		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, 5, products[1].Stock())
	})
}

func TestStockLedgerRestore(t *testing.T) {
	ledger := services.NewStockLedger()

	t.Run("should credit every line", func(t *testing.T) {
		products := map[int64]*product.Product{
			1: newProduct(t, 1, "Keyboard", 6),
			2: newProduct(t, 2, "Mouse", 0),
		}
		lines := []order.Line{newLine(t, 1, 4), newLine(t, 2, 5)}

		err := ledger.Restore(products, lines)

		require.NoError(t, err)
		assert.Equal(t, 10, products[1].Stock())
		assert.Equal(t, 5, products[2].Stock())
	})

	t.Run("should skip lines whose product no longer exists", func(t *testing.T) {
		products := map[int64]*product.Product{
			1: newProduct(t, 1, "Keyboard", 6),
		}
		lines := []order.Line{newLine(t, 99, 2), newLine(t, 1, 4)}

		err := ledger.Restore(products, lines)

		require.NoError(t, err)
		assert.Equal(t, 10, products[1].Stock())
	})
}
