// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gbeaudoin/bevfactory-be/internal/core/domain"
	"github.com/gbeaudoin/bevfactory-be/internal/pkg/config"
)

// FactoryDefaults returns the factory configuration used by handler tests.
func FactoryDefaults() config.FactoryConfig {
	return config.FactoryConfig{
		Name:                  "Usine Test",
		DefaultAlertThreshold: 10,
		DefaultLineCapacity:   100,
		MaxLines:              32,
	}
}

// TestLogger returns a test logger, verbose only when the test run is.
func TestLogger() *slog.Logger {
	level := slog.LevelError
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// Dec builds a decimal from a float for terse test fixtures.
func Dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Req builds one ingredient requirement with the default liter unit.
func Req(name string, quantity float64) domain.IngredientRequirement {
	return domain.IngredientRequirement{Name: name, Quantity: Dec(quantity), Unit: "L"}
}

// NewProcess builds a valid process, failing the test on error. With no steps
// given it is the empty process.
func NewProcess(t *testing.T, name string, kind domain.BeverageKind, steps ...domain.ProductionStep) *domain.ProductionProcess {
	t.Helper()
	process, err := domain.NewProductionProcess(name, kind, steps)
	require.NoError(t, err)
	return process
}

// NewLine builds a valid line bound to a fresh process of the given kind.
func NewLine(t *testing.T, name string, capacity int, kind domain.BeverageKind, steps ...domain.ProductionStep) *domain.ProductionLine {
	t.Helper()
	line, err := domain.NewProductionLine(name, capacity, NewProcess(t, name+"-process", kind, steps...))
	require.NoError(t, err)
	return line
}

// Step builds one production step with a minute-denominated duration.
func Step(name string, minutes int) domain.ProductionStep {
	return domain.ProductionStep{Name: name, Duration: time.Duration(minutes) * time.Minute}
}

// SeedStock fills a stock from a name -> (quantity, threshold) table.
func SeedStock(t *testing.T, stock *domain.Stock, entries map[string][2]float64) {
	t.Helper()
	for name, qt := range entries {
		require.NoError(t, stock.Add(name, Dec(qt[0]), Dec(qt[1])))
	}
}

// SparklingWater builds a valid sparkling water beverage from eau and co2
// quantities. Handy for stock-focused tests that just need a producible
// beverage with an exact requirement set.
func SparklingWater(name string, volume, eau, co2 float64) *domain.Water {
	return domain.NewWater(name, Dec(volume), []domain.IngredientRequirement{
		Req("eau", eau),
		Req("co2", co2),
	}, true)
}

// Cola builds a valid soda beverage.
func Cola(name string, volume float64) *domain.Soda {
	return domain.NewSoda(name, Dec(volume), []domain.IngredientRequirement{
		Req("eau", volume*0.95),
		Req("sucre", volume*0.1),
		Req("co2", volume*0.02),
	}, Dec(110))
}
