// internal/core/domain/stock_test.go
package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbeaudoin/bevfactory-be/internal/core/domain"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func req(name string, quantity float64) domain.IngredientRequirement {
	return domain.IngredientRequirement{Name: name, Quantity: dec(quantity), Unit: "L"}
}

func TestStock_Add(t *testing.T) {
	t.Run("creates a new entry", func(t *testing.T) {
		stock := domain.NewStock()
		require.NoError(t, stock.Add("eau", dec(100), dec(10)))

		entry, ok := stock.Entry("eau")
		require.True(t, ok)
		assert.True(t, entry.Quantity.Equal(dec(100)))
		assert.True(t, entry.AlertThreshold.Equal(dec(10)))
	})

	t.Run("quantity is additive across calls", func(t *testing.T) {
		stock := domain.NewStock()
		require.NoError(t, stock.Add("eau", dec(100), dec(10)))
		require.NoError(t, stock.Add("eau", dec(50), dec(10)))

		entry, _ := stock.Entry("eau")
		assert.True(t, entry.Quantity.Equal(dec(150)))
	})

	t.Run("last alert threshold wins", func(t *testing.T) {
		stock := domain.NewStock()
		require.NoError(t, stock.Add("eau", dec(100), dec(10)))
		require.NoError(t, stock.Add("eau", dec(0), dec(25)))

		entry, _ := stock.Entry("eau")
		assert.True(t, entry.AlertThreshold.Equal(dec(25)))
		assert.True(t, entry.Quantity.Equal(dec(100)))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name      string
			ingName   string
			quantity  decimal.Decimal
			threshold decimal.Decimal
		}{
			{"empty name", "", dec(10), dec(1)},
			{"negative quantity", "eau", dec(-1), dec(1)},
			{"negative threshold", "eau", dec(10), dec(-1)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				stock := domain.NewStock()
				err := stock.Add(tt.ingName, tt.quantity, tt.threshold)
				assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
			})
		}
	})
}

func TestStock_Consume(t *testing.T) {
	t.Run("debits every requirement", func(t *testing.T) {
		stock := domain.NewStock()
		require.NoError(t, stock.Add("eau", dec(1000), dec(50)))
		require.NoError(t, stock.Add("co2", dec(100), dec(10)))

		err := stock.Consume([]domain.IngredientRequirement{req("eau", 980), req("co2", 5)})
		require.NoError(t, err)

		eau, _ := stock.Entry("eau")
		co2, _ := stock.Entry("co2")
		assert.True(t, eau.Quantity.Equal(dec(20)), "eau = %s", eau.Quantity)
		assert.True(t, co2.Quantity.Equal(dec(95)), "co2 = %s", co2.Quantity)
	})

	t.Run("is all or nothing", func(t *testing.T) {
		stock := domain.NewStock()
		require.NoError(t, stock.Add("eau", dec(10), dec(1)))
		require.NoError(t, stock.Add("sucre", dec(100), dec(10)))

		// eau is short, sucre is plentiful: neither may be debited.
		err := stock.Consume([]domain.IngredientRequirement{req("eau", 50), req("sucre", 5)})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		eau, _ := stock.Entry("eau")
		sucre, _ := stock.Entry("sucre")
		assert.True(t, eau.Quantity.Equal(dec(10)))
		assert.True(t, sucre.Quantity.Equal(dec(100)))
	})

	t.Run("reports every deficit", func(t *testing.T) {
		stock := domain.NewStock()
		require.NoError(t, stock.Add("eau", dec(10), dec(1)))

		err := stock.Consume([]domain.IngredientRequirement{
			req("eau", 50),
			req("cafeine", 2),
		})
		require.Error(t, err)

		var insufficient *domain.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		require.Len(t, insufficient.Deficits, 2)
		assert.Equal(t, "cafeine", insufficient.Deficits[0].Ingredient)
		assert.Equal(t, "eau", insufficient.Deficits[1].Ingredient)
		assert.True(t, insufficient.Deficits[1].Required.Equal(dec(50)))
		assert.True(t, insufficient.Deficits[1].Available.Equal(dec(10)))
		assert.Contains(t, err.Error(), "eau (need 50, have 10)")
	})

	t.Run("sums duplicate ingredients before checking", func(t *testing.T) {
		stock := domain.NewStock()
		require.NoError(t, stock.Add("eau", dec(30), dec(1)))

		// 20 + 20 exceeds the 30 available even though each line alone fits.
		err := stock.Consume([]domain.IngredientRequirement{req("eau", 20), req("eau", 20)})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		eau, _ := stock.Entry("eau")
		assert.True(t, eau.Quantity.Equal(dec(30)))
	})

	t.Run("unknown ingredient is a deficit", func(t *testing.T) {
		stock := domain.NewStock()
		err := stock.Consume([]domain.IngredientRequirement{req("guarana", 1)})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("empty requirements always succeed", func(t *testing.T) {
		stock := domain.NewStock()
		assert.NoError(t, stock.Consume(nil))
	})
}

func TestStock_CheckAvailability(t *testing.T) {
	stock := domain.NewStock()
	require.NoError(t, stock.Add("eau", dec(100), dec(10)))

	assert.True(t, stock.CheckAvailability([]domain.IngredientRequirement{req("eau", 100)}))
	assert.False(t, stock.CheckAvailability([]domain.IngredientRequirement{req("eau", 101)}))
	assert.False(t, stock.CheckAvailability([]domain.IngredientRequirement{req("sucre", 1)}))
}

func TestStock_Restore(t *testing.T) {
	stock := domain.NewStock()
	require.NoError(t, stock.Add("eau", dec(100), dec(10)))

	requirements := []domain.IngredientRequirement{req("eau", 40)}
	require.NoError(t, stock.Consume(requirements))
	stock.Restore(requirements)

	eau, _ := stock.Entry("eau")
	assert.True(t, eau.Quantity.Equal(dec(100)))
	assert.True(t, eau.AlertThreshold.Equal(dec(10)), "restore must not touch thresholds")
}

func TestStock_Alerts(t *testing.T) {
	t.Run("reports at-or-below threshold, sorted", func(t *testing.T) {
		stock := domain.NewStock()
		require.NoError(t, stock.Add("eau", dec(5), dec(10)))
		require.NoError(t, stock.Add("sucre", dec(10), dec(10)))
		require.NoError(t, stock.Add("co2", dec(50), dec(10)))

		assert.Equal(t, []string{"eau", "sucre"}, stock.Alerts())
	})

	t.Run("recomputed after a restock", func(t *testing.T) {
		stock := domain.NewStock()
		require.NoError(t, stock.Add("eau", dec(5), dec(10)))
		assert.Equal(t, []string{"eau"}, stock.Alerts())

		require.NoError(t, stock.Add("eau", dec(10), dec(10)))
		assert.Empty(t, stock.Alerts())
	})
}

func TestStock_Levels(t *testing.T) {
	stock := domain.NewStock()
	require.NoError(t, stock.Add("sucre", dec(10), dec(1)))
	require.NoError(t, stock.Add("eau", dec(100), dec(10)))

	levels := stock.Levels()
	require.Len(t, levels, 2)
	assert.Equal(t, "eau", levels[0].Name)
	assert.Equal(t, "sucre", levels[1].Name)
}

func TestInsufficientStockError_Unwrap(t *testing.T) {
	err := &domain.InsufficientStockError{Deficits: []domain.StockDeficit{
		{Ingredient: "eau", Required: dec(5), Available: dec(1)},
	}}
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}
