// internal/core/ports/factory_service.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gbeaudoin/bevfactory-be/internal/core/domain"
)

// FactoryService defines the application service port for the factory.
// This interface is implemented by the application service and consumed by
// the HTTP handlers and the demo command.
type FactoryService interface {
	AddLine(ctx context.Context, line *domain.ProductionLine) error
	Produce(ctx context.Context, beverage domain.Beverage, lineName string) (domain.BatchRecord, error)
	Restock(ctx context.Context, ingredient string, quantity, alertThreshold decimal.Decimal) error
	SetObjective(ctx context.Context, kind domain.BeverageKind, target int) error

	StockLevels(ctx context.Context) []domain.StockEntry
	StockAlerts(ctx context.Context) []string
	Lines(ctx context.Context) []LineStatus
	Batches(ctx context.Context) []domain.BatchRecord
	Report(ctx context.Context) *ProductionReport
}

// LineStatus is the read-only view of one production line.
type LineStatus struct {
	Name              string              `json:"name"`
	Kind              domain.BeverageKind `json:"kind"`
	ProcessName       string              `json:"process_name"`
	ProcessDuration   time.Duration       `json:"process_duration"`
	Capacity          int                 `json:"capacity"`
	BatchCount        int                 `json:"batch_count"`
	RemainingCapacity int                 `json:"remaining_capacity"`
}

// LineReport aggregates the batches one line produced.
type LineReport struct {
	Line        string          `json:"line"`
	Batches     int             `json:"batches"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Utilization float64         `json:"utilization"`
}

// KindReport aggregates the batches of one beverage kind, with objective
// progress when a production objective is set for the kind.
type KindReport struct {
	Kind      domain.BeverageKind `json:"kind"`
	Batches   int                 `json:"batches"`
	TotalCost decimal.Decimal     `json:"total_cost"`
	Objective int                 `json:"objective,omitempty"`
}

// ProductionReport is the factory-level aggregate consumed by the
// presentation layer. Pure read, recomputed on demand.
type ProductionReport struct {
	FactoryName  string          `json:"factory_name"`
	GeneratedAt  time.Time       `json:"generated_at"`
	TotalBatches int             `json:"total_batches"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Lines        []LineReport    `json:"lines"`
	Kinds        []KindReport    `json:"kinds"`
	StockAlerts  []string        `json:"stock_alerts"`
}
