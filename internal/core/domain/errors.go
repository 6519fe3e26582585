// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors for every recoverable failure the factory can surface.
// Callers match with errors.Is; none of these is fatal to the process.
var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrLineNotFound      = errors.New("production line not found")
	ErrDuplicateLine     = errors.New("duplicate production line")
	ErrInvalidBeverage   = errors.New("invalid beverage")
)

// StockDeficit describes one ingredient that could not satisfy a requirement.
type StockDeficit struct {
	Ingredient string          `json:"ingredient"`
	Required   decimal.Decimal `json:"required"`
	Available  decimal.Decimal `json:"available"`
}

// InsufficientStockError reports every deficient ingredient of a rejected
// consumption, so the caller can restock in one pass instead of retrying
// ingredient by ingredient.
type InsufficientStockError struct {
	Deficits []StockDeficit
}

func (e *InsufficientStockError) Error() string {
	names := make([]string, len(e.Deficits))
	for i, d := range e.Deficits {
		names[i] = fmt.Sprintf("%s (need %s, have %s)", d.Ingredient, d.Required, d.Available)
	}
	return fmt.Sprintf("insufficient stock: %s", strings.Join(names, ", "))
}

// Unwrap lets errors.Is(err, ErrInsufficientStock) match.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
