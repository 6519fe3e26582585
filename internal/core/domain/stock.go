// internal/core/domain/stock.go
package domain

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// StockEntry is the stock ledger line for one ingredient.
type StockEntry struct {
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
}

// Stock owns the factory's raw-ingredient inventory. It is shared by every
// production line, so all mutating paths run under one mutex: check-and-consume
// is a single critical section and quantities can never go negative.
type Stock struct {
	mu      sync.RWMutex
	entries map[string]StockEntry
}

// NewStock creates an empty stock.
func NewStock() *Stock {
	return &Stock{entries: make(map[string]StockEntry)}
}

// Add creates the entry or credits an existing one. Quantity is additive
// across calls; the alert threshold is replaced by the last value given.
func (s *Stock) Add(name string, quantity, alertThreshold decimal.Decimal) error {
	if name == "" {
		return fmt.Errorf("%w: ingredient name is required", ErrInvalidQuantity)
	}
	if quantity.IsNegative() {
		return fmt.Errorf("%w: cannot add %s of %s", ErrInvalidQuantity, quantity, name)
	}
	if alertThreshold.IsNegative() {
		return fmt.Errorf("%w: alert threshold for %s cannot be negative", ErrInvalidQuantity, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[name]
	if !ok {
		entry = StockEntry{Name: name}
	}
	entry.Quantity = entry.Quantity.Add(quantity)
	entry.AlertThreshold = alertThreshold
	s.entries[name] = entry
	return nil
}

// CheckAvailability reports whether every requirement can be satisfied.
// Pure read; a positive answer can go stale before Consume, which re-verifies.
func (s *Stock) CheckAvailability(requirements []IngredientRequirement) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.deficits(requirements)) == 0
}

// Consume debits every requirement atomically. If any single ingredient is
// short, nothing is debited and the returned InsufficientStockError names
// every deficient ingredient.
func (s *Stock) Consume(requirements []IngredientRequirement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deficits := s.deficits(requirements); len(deficits) > 0 {
		return &InsufficientStockError{Deficits: deficits}
	}

	for name, required := range totalRequired(requirements) {
		entry := s.entries[name]
		entry.Quantity = entry.Quantity.Sub(required)
		s.entries[name] = entry
	}
	return nil
}

// Restore credits back previously consumed requirements. It is the rollback
// path for a production that failed after its stock debit; thresholds are
// left untouched.
func (s *Stock) Restore(requirements []IngredientRequirement) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, quantity := range totalRequired(requirements) {
		entry, ok := s.entries[name]
		if !ok {
			entry = StockEntry{Name: name}
		}
		entry.Quantity = entry.Quantity.Add(quantity)
		s.entries[name] = entry
	}
}

// Alerts returns the ingredients at or below their alert threshold, sorted by
// name. Recomputed on every call, never cached.
func (s *Stock) Alerts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	alerts := make([]string, 0)
	for name, entry := range s.entries {
		if entry.Quantity.LessThanOrEqual(entry.AlertThreshold) {
			alerts = append(alerts, name)
		}
	}
	sort.Strings(alerts)
	return alerts
}

// Levels returns a snapshot of every entry, sorted by ingredient name.
func (s *Stock) Levels() []StockEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	levels := make([]StockEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		levels = append(levels, entry)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })
	return levels
}

// Entry returns the current ledger line for one ingredient.
func (s *Stock) Entry(name string) (StockEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[name]
	return entry, ok
}

// deficits computes the shortfall list for a requirement set. Callers hold
// at least the read lock. Requirements naming the same ingredient twice are
// summed before the comparison so the all-or-nothing rule sees the true total.
func (s *Stock) deficits(requirements []IngredientRequirement) []StockDeficit {
	totals := totalRequired(requirements)

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	var deficits []StockDeficit
	for _, name := range names {
		required := totals[name]
		entry, ok := s.entries[name]
		if !ok || entry.Quantity.LessThan(required) {
			deficits = append(deficits, StockDeficit{
				Ingredient: name,
				Required:   required,
				Available:  entry.Quantity,
			})
		}
	}
	return deficits
}

func totalRequired(requirements []IngredientRequirement) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(requirements))
	for _, req := range requirements {
		totals[req.Name] = totals[req.Name].Add(req.Quantity)
	}
	return totals
}
