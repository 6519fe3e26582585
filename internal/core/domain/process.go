// internal/core/domain/process.go
package domain

import (
	"fmt"
	"time"
)

// ProductionStep is one named, timed unit of work inside a process.
// Immutable once constructed.
type ProductionStep struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
}

// StepResult is the outcome of one simulated step.
type StepResult struct {
	Step      string        `json:"step"`
	Duration  time.Duration `json:"duration"`
	Completed bool          `json:"completed"`
}

// ProcessResult is the outcome of one full process run.
type ProcessResult struct {
	Process       string        `json:"process"`
	Beverage      string        `json:"beverage"`
	Steps         []StepResult  `json:"steps"`
	TotalDuration time.Duration `json:"total_duration"`
}

// ProductionProcess is an ordered, immutable sequence of production steps
// for one beverage kind. No real time is consumed when it runs; the declared
// durations and step count are the observable outputs.
type ProductionProcess struct {
	name  string
	kind  BeverageKind
	steps []ProductionStep
}

// NewProductionProcess builds a process. Step durations must not be negative.
func NewProductionProcess(name string, kind BeverageKind, steps []ProductionStep) (*ProductionProcess, error) {
	if name == "" {
		return nil, fmt.Errorf("process name is required")
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown beverage kind %q", kind)
	}
	for _, step := range steps {
		if step.Name == "" {
			return nil, fmt.Errorf("process %s: step name is required", name)
		}
		if step.Duration < 0 {
			return nil, fmt.Errorf("process %s: step %s has negative duration", name, step.Name)
		}
	}
	owned := make([]ProductionStep, len(steps))
	copy(owned, steps)
	return &ProductionProcess{name: name, kind: kind, steps: owned}, nil
}

func (p *ProductionProcess) Name() string { return p.name }

// Kind is the beverage kind this process is built for. The factory uses it
// to match beverages to lines.
func (p *ProductionProcess) Kind() BeverageKind { return p.kind }

// Steps returns a copy of the step sequence in declared order.
func (p *ProductionProcess) Steps() []ProductionStep {
	out := make([]ProductionStep, len(p.steps))
	copy(out, p.steps)
	return out
}

// TotalDuration is the sum of all step durations.
func (p *ProductionProcess) TotalDuration() time.Duration {
	var total time.Duration
	for _, step := range p.steps {
		total += step.Duration
	}
	return total
}

// Run simulates the steps in declared order for the named beverage. Steps
// cannot fail in this design; if a failing step model is ever added, the run
// must stop at the first failure and report partial completion.
func (p *ProductionProcess) Run(beverageName string) ProcessResult {
	result := ProcessResult{
		Process:  p.name,
		Beverage: beverageName,
		Steps:    make([]StepResult, 0, len(p.steps)),
	}
	for _, step := range p.steps {
		result.Steps = append(result.Steps, StepResult{
			Step:      step.Name,
			Duration:  step.Duration,
			Completed: true,
		})
		result.TotalDuration += step.Duration
	}
	return result
}
