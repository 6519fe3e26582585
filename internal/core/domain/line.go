// internal/core/domain/line.go
package domain

import (
	"fmt"
	"sync"
)

// ProductionLine binds one process to a capacity ceiling and keeps the
// ordered history of batches it produced. The process binding is permanent;
// producing a different kind means constructing a new line.
//
// Capacity is a monotonic ceiling: once the line has recorded as many batches
// as its capacity it rejects every further run.
type ProductionLine struct {
	mu       sync.Mutex
	name     string
	capacity int
	process  *ProductionProcess
	history  []BatchRecord
}

// NewProductionLine builds a line bound to the given process.
func NewProductionLine(name string, capacity int, process *ProductionProcess) (*ProductionLine, error) {
	if name == "" {
		return nil, fmt.Errorf("line name is required")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("line %s: capacity must be positive, got %d", name, capacity)
	}
	if process == nil {
		return nil, fmt.Errorf("line %s: a production process is required", name)
	}
	return &ProductionLine{name: name, capacity: capacity, process: process}, nil
}

func (l *ProductionLine) Name() string { return l.name }

func (l *ProductionLine) Capacity() int { return l.capacity }

// Process returns the process the line is permanently bound to.
func (l *ProductionLine) Process() *ProductionProcess { return l.process }

// BatchCount is the number of batches recorded so far.
func (l *ProductionLine) BatchCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.history)
}

// RemainingCapacity is how many more runs the line will accept.
func (l *ProductionLine) RemainingCapacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.capacity - len(l.history)
}

// History returns a copy of the batch records in insertion order.
func (l *ProductionLine) History() []BatchRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]BatchRecord, len(l.history))
	copy(out, l.history)
	return out
}

// Produce runs one production on this line. The capacity check, the process
// run and the history append happen under the line's lock, so the history can
// never exceed capacity. newRecord is invoked only after the process has run,
// which lets the caller allocate a lot number exclusively for successful runs.
func (l *ProductionLine) Produce(beverage Beverage, newRecord func(ProcessResult) BatchRecord) (BatchRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.history) >= l.capacity {
		return BatchRecord{}, fmt.Errorf("%w: line %s reached its capacity of %d batches",
			ErrCapacityExceeded, l.name, l.capacity)
	}

	result := l.process.Run(beverage.Name())
	record := newRecord(result)
	l.history = append(l.history, record)
	return record, nil
}
