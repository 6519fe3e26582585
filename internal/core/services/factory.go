// internal/core/services/factory.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gbeaudoin/bevfactory-be/internal/core/domain"
	"github.com/gbeaudoin/bevfactory-be/internal/core/ports"
)

// FactoryService is the factory orchestrator. It owns the shared stock, the
// registered production lines, the lot-number sequence and the aggregate
// batch history.
//
// The stock is shared across all lines, so Produce serializes line selection,
// the stock check-and-consume and the line run behind one mutex: concurrent
// callers can never double-spend ingredients or duplicate a lot number.
type FactoryService struct {
	name   string
	stock  *domain.Stock
	logger *slog.Logger

	mu         sync.Mutex
	lines      map[string]*domain.ProductionLine
	lineOrder  []string
	lotSeq     int64
	history    []domain.BatchRecord
	objectives map[domain.BeverageKind]int
}

// Statically assert that *FactoryService implements the FactoryService port.
var _ ports.FactoryService = (*FactoryService)(nil)

// NewFactoryService creates a factory with an empty line registry around the
// given stock.
func NewFactoryService(name string, stock *domain.Stock, logger *slog.Logger) *FactoryService {
	return &FactoryService{
		name:       name,
		stock:      stock,
		logger:     logger.With(slog.String("service", "factory")),
		lines:      make(map[string]*domain.ProductionLine),
		objectives: make(map[domain.BeverageKind]int),
	}
}

// Name returns the factory name.
func (s *FactoryService) Name() string { return s.name }

// Stock exposes the factory's stock for seeding and tests.
func (s *FactoryService) Stock() *domain.Stock { return s.stock }

// AddLine registers a production line under its unique name. Registration
// order is preserved because automatic line selection depends on it.
func (s *FactoryService) AddLine(ctx context.Context, line *domain.ProductionLine) error {
	if line == nil {
		return fmt.Errorf("%w: nil line", domain.ErrLineNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.lines[line.Name()]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateLine, line.Name())
	}
	s.lines[line.Name()] = line
	s.lineOrder = append(s.lineOrder, line.Name())

	s.logger.InfoContext(ctx, "production line registered",
		slog.String("line", line.Name()),
		slog.String("kind", string(line.Process().Kind())),
		slog.Int("capacity", line.Capacity()))
	return nil
}

// Restock credits the stock with an ingredient delivery.
func (s *FactoryService) Restock(ctx context.Context, ingredient string, quantity, alertThreshold decimal.Decimal) error {
	if err := s.stock.Add(ingredient, quantity, alertThreshold); err != nil {
		return fmt.Errorf("failed to restock %s: %w", ingredient, err)
	}

	s.logger.InfoContext(ctx, "ingredient restocked",
		slog.String("ingredient", ingredient),
		slog.String("quantity", quantity.String()),
		slog.String("alert_threshold", alertThreshold.String()))
	return nil
}

// SetObjective records a per-kind production target for reporting.
func (s *FactoryService) SetObjective(ctx context.Context, kind domain.BeverageKind, target int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidBeverage, kind)
	}
	if target < 0 {
		return fmt.Errorf("%w: objective cannot be negative", domain.ErrInvalidQuantity)
	}

	s.mu.Lock()
	s.objectives[kind] = target
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "production objective set",
		slog.String("kind", string(kind)),
		slog.Int("target", target))
	return nil
}

// Produce runs one full production: validate the beverage, select a line,
// check and debit the stock, run the line's process and record the batch.
// Any failure leaves the factory exactly as it was; in particular a stock
// debit never survives a production that did not happen.
func (s *FactoryService) Produce(ctx context.Context, beverage domain.Beverage, lineName string) (domain.BatchRecord, error) {
	if beverage == nil {
		return domain.BatchRecord{}, fmt.Errorf("%w: nil beverage", domain.ErrInvalidBeverage)
	}
	if err := beverage.Validate(); err != nil {
		return domain.BatchRecord{}, fmt.Errorf("beverage rejected: %w", err)
	}

	requirements := beverage.Requirements()

	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := s.selectLine(beverage, lineName)
	if err != nil {
		return domain.BatchRecord{}, err
	}

	// Atomic all-or-nothing debit. Stock re-verifies availability under its
	// own lock, so a separate CheckAvailability call here would be redundant.
	if err := s.stock.Consume(requirements); err != nil {
		s.logger.WarnContext(ctx, "production rejected, insufficient stock",
			slog.String("beverage", beverage.Name()),
			slog.String("line", line.Name()),
			slog.String("error", err.Error()))
		return domain.BatchRecord{}, fmt.Errorf("cannot produce %s: %w", beverage.Name(), err)
	}

	record, err := line.Produce(beverage, func(result domain.ProcessResult) domain.BatchRecord {
		s.lotSeq++
		return domain.BatchRecord{
			ID:         uuid.New(),
			LotNumber:  fmt.Sprintf("LOT-%06d", s.lotSeq),
			Sequence:   s.lotSeq,
			Beverage:   beverage.Name(),
			Kind:       beverage.Kind(),
			Line:       line.Name(),
			Cost:       beverage.ProductionCost(),
			Duration:   result.TotalDuration,
			ProducedAt: time.Now(),
		}
	})
	if err != nil {
		// The line refused the run after the stock was debited: roll the
		// consumption back so no partial debit survives the failure.
		s.stock.Restore(requirements)
		s.logger.WarnContext(ctx, "production failed, stock rolled back",
			slog.String("beverage", beverage.Name()),
			slog.String("line", line.Name()),
			slog.String("error", err.Error()))
		return domain.BatchRecord{}, fmt.Errorf("cannot produce %s: %w", beverage.Name(), err)
	}

	s.history = append(s.history, record)

	s.logger.InfoContext(ctx, "beverage produced",
		slog.String("lot_number", record.LotNumber),
		slog.String("beverage", record.Beverage),
		slog.String("kind", string(record.Kind)),
		slog.String("line", record.Line),
		slog.String("cost", record.Cost.String()),
		slog.Duration("duration", record.Duration))
	return record, nil
}

// selectLine resolves the target line. An explicit name wins; otherwise the
// first registration-order line whose process matches the beverage kind and
// has spare capacity, then the first line with spare capacity. Deterministic
// for a given factory state. Callers hold s.mu.
func (s *FactoryService) selectLine(beverage domain.Beverage, lineName string) (*domain.ProductionLine, error) {
	if lineName != "" {
		line, ok := s.lines[lineName]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrLineNotFound, lineName)
		}
		return line, nil
	}

	if len(s.lineOrder) == 0 {
		return nil, fmt.Errorf("%w: no production line registered", domain.ErrLineNotFound)
	}

	var fallback *domain.ProductionLine
	for _, name := range s.lineOrder {
		line := s.lines[name]
		if line.RemainingCapacity() <= 0 {
			continue
		}
		if line.Process().Kind() == beverage.Kind() {
			return line, nil
		}
		if fallback == nil {
			fallback = line
		}
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, fmt.Errorf("%w: every registered line is at capacity", domain.ErrCapacityExceeded)
}

// StockLevels returns the current stock snapshot.
func (s *FactoryService) StockLevels(_ context.Context) []domain.StockEntry {
	return s.stock.Levels()
}

// StockAlerts returns the ingredients at or below their alert threshold.
func (s *FactoryService) StockAlerts(_ context.Context) []string {
	return s.stock.Alerts()
}

// Lines returns the status of every registered line in registration order.
func (s *FactoryService) Lines(_ context.Context) []ports.LineStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]ports.LineStatus, 0, len(s.lineOrder))
	for _, name := range s.lineOrder {
		line := s.lines[name]
		statuses = append(statuses, ports.LineStatus{
			Name:              line.Name(),
			Kind:              line.Process().Kind(),
			ProcessName:       line.Process().Name(),
			ProcessDuration:   line.Process().TotalDuration(),
			Capacity:          line.Capacity(),
			BatchCount:        line.BatchCount(),
			RemainingCapacity: line.RemainingCapacity(),
		})
	}
	return statuses
}

// Batches returns a copy of the factory-level batch history in production order.
func (s *FactoryService) Batches(_ context.Context) []domain.BatchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.BatchRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Report aggregates batch counts and costs per line and per beverage kind,
// with objective progress and the current stock alerts. Pure read.
func (s *FactoryService) Report(ctx context.Context) *ports.ProductionReport {
	s.mu.Lock()

	report := &ports.ProductionReport{
		FactoryName:  s.name,
		GeneratedAt:  time.Now(),
		TotalBatches: len(s.history),
		TotalCost:    decimal.Zero,
	}

	perLine := make(map[string]*ports.LineReport)
	perKind := make(map[domain.BeverageKind]*ports.KindReport)
	for _, record := range s.history {
		report.TotalCost = report.TotalCost.Add(record.Cost)

		lr, ok := perLine[record.Line]
		if !ok {
			lr = &ports.LineReport{Line: record.Line}
			perLine[record.Line] = lr
		}
		lr.Batches++
		lr.TotalCost = lr.TotalCost.Add(record.Cost)

		kr, ok := perKind[record.Kind]
		if !ok {
			kr = &ports.KindReport{Kind: record.Kind}
			perKind[record.Kind] = kr
		}
		kr.Batches++
		kr.TotalCost = kr.TotalCost.Add(record.Cost)
	}

	// Lines appear in registration order, including idle ones.
	for _, name := range s.lineOrder {
		line := s.lines[name]
		lr, ok := perLine[name]
		if !ok {
			lr = &ports.LineReport{Line: name, TotalCost: decimal.Zero}
		}
		lr.Utilization = float64(line.BatchCount()) / float64(line.Capacity())
		report.Lines = append(report.Lines, *lr)
	}

	// Kinds with an objective appear even before the first batch.
	for kind, target := range s.objectives {
		kr, ok := perKind[kind]
		if !ok {
			kr = &ports.KindReport{Kind: kind, TotalCost: decimal.Zero}
			perKind[kind] = kr
		}
		kr.Objective = target
	}
	kinds := make([]domain.BeverageKind, 0, len(perKind))
	for kind := range perKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, kind := range kinds {
		report.Kinds = append(report.Kinds, *perKind[kind])
	}

	s.mu.Unlock()

	report.StockAlerts = s.stock.Alerts()

	s.logger.DebugContext(ctx, "production report generated",
		slog.Int("total_batches", report.TotalBatches),
		slog.String("total_cost", report.TotalCost.String()))
	return report
}
