// internal/core/domain/line_test.go
package domain_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbeaudoin/bevfactory-be/internal/core/domain"
)

func newTestLine(t *testing.T, capacity int) *domain.ProductionLine {
	t.Helper()
	process, err := domain.NewProductionProcess("water-standard", domain.KindWater, []domain.ProductionStep{
		{Name: "filtration", Duration: 5 * time.Minute},
		{Name: "bottling", Duration: 10 * time.Minute},
	})
	require.NoError(t, err)
	line, err := domain.NewProductionLine("ligne-eau-1", capacity, process)
	require.NoError(t, err)
	return line
}

func stillWater(name string) *domain.Water {
	return domain.NewWater(name, dec(100), []domain.IngredientRequirement{req("eau", 100)}, false)
}

func recordNamed(beverage string) func(domain.ProcessResult) domain.BatchRecord {
	var seq int
	return func(result domain.ProcessResult) domain.BatchRecord {
		seq++
		return domain.BatchRecord{
			ID:        uuid.New(),
			LotNumber: fmt.Sprintf("LOT-%06d", seq),
			Beverage:  beverage,
			Duration:  result.TotalDuration,
		}
	}
}

func TestNewProductionLine(t *testing.T) {
	process, err := domain.NewProductionProcess("p", domain.KindWater, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		lineName string
		capacity int
		process  *domain.ProductionProcess
		wantErr  bool
	}{
		{"valid", "ligne-1", 5, process, false},
		{"missing name", "", 5, process, true},
		{"zero capacity", "ligne-1", 0, process, true},
		{"negative capacity", "ligne-1", -1, process, true},
		{"nil process", "ligne-1", 5, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := domain.NewProductionLine(tt.lineName, tt.capacity, tt.process)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lineName, line.Name())
			assert.Equal(t, tt.capacity, line.Capacity())
			assert.Equal(t, tt.capacity, line.RemainingCapacity())
		})
	}
}

func TestProductionLine_Produce(t *testing.T) {
	t.Run("records batches up to capacity", func(t *testing.T) {
		line := newTestLine(t, 2)
		newRecord := recordNamed("Eau de Source")

		first, err := line.Produce(stillWater("Eau de Source"), newRecord)
		require.NoError(t, err)
		assert.Equal(t, "LOT-000001", first.LotNumber)
		assert.Equal(t, 15*time.Minute, first.Duration)

		second, err := line.Produce(stillWater("Eau de Source"), newRecord)
		require.NoError(t, err)
		assert.Equal(t, "LOT-000002", second.LotNumber)

		assert.Equal(t, 2, line.BatchCount())
		assert.Equal(t, 0, line.RemainingCapacity())
	})

	t.Run("rejects runs past capacity", func(t *testing.T) {
		line := newTestLine(t, 1)
		_, err := line.Produce(stillWater("Eau"), recordNamed("Eau"))
		require.NoError(t, err)

		called := false
		_, err = line.Produce(stillWater("Eau"), func(domain.ProcessResult) domain.BatchRecord {
			called = true
			return domain.BatchRecord{}
		})
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
		assert.False(t, called, "a rejected run must not allocate a record")
		assert.Equal(t, 1, line.BatchCount())
	})

	t.Run("history preserves insertion order", func(t *testing.T) {
		line := newTestLine(t, 3)
		for _, name := range []string{"a", "b", "c"} {
			_, err := line.Produce(stillWater(name), recordNamed(name))
			require.NoError(t, err)
		}

		history := line.History()
		require.Len(t, history, 3)
		assert.Equal(t, "a", history[0].Beverage)
		assert.Equal(t, "b", history[1].Beverage)
		assert.Equal(t, "c", history[2].Beverage)
	})

	t.Run("history cannot exceed capacity under concurrency", func(t *testing.T) {
		line := newTestLine(t, 5)
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				line.Produce(stillWater("Eau"), recordNamed("Eau")) //nolint:errcheck
			}()
		}
		wg.Wait()

		assert.Equal(t, 5, line.BatchCount())
		assert.Equal(t, 0, line.RemainingCapacity())
	})
}

func TestProductionLine_HistoryIsACopy(t *testing.T) {
	line := newTestLine(t, 2)
	_, err := line.Produce(stillWater("Eau"), recordNamed("Eau"))
	require.NoError(t, err)

	history := line.History()
	history[0].Beverage = "tampered"
	assert.Equal(t, "Eau", line.History()[0].Beverage)
}
