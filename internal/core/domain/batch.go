// internal/core/domain/batch.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchRecord is the traceability record of one completed production run.
// Created exactly once per successful run and never mutated afterwards.
// Sequence numbers are allocated by the factory and are strictly increasing
// and unique for its whole lifetime.
type BatchRecord struct {
	ID         uuid.UUID       `json:"id"`
	LotNumber  string          `json:"lot_number"`
	Sequence   int64           `json:"sequence"`
	Beverage   string          `json:"beverage"`
	Kind       BeverageKind    `json:"kind"`
	Line       string          `json:"line"`
	Cost       decimal.Decimal `json:"cost"`
	Duration   time.Duration   `json:"duration"`
	ProducedAt time.Time       `json:"produced_at"`
}
