// cmd/demo/main.go
//
// Demonstration of the beverage factory: seeds the stock, registers two
// production lines, produces a handful of beverages (including runs that are
// expected to fail) and prints the production report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gbeaudoin/bevfactory-be/internal/core/domain"
	"github.com/gbeaudoin/bevfactory-be/internal/core/services"
	"github.com/gbeaudoin/bevfactory-be/internal/pkg/logger"
)

func main() {
	verbose := flag.Bool("verbose", false, "log every factory operation")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	slogger := logger.SetupLogger(level, "text")

	if err := run(context.Background(), slogger.Logger); err != nil {
		slogger.Error("demonstration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, slogger *slog.Logger) error {
	factory := services.NewFactoryService("Usine Centrale", domain.NewStock(), slogger)

	// Seed the raw-ingredient stock.
	seed := []struct {
		name      string
		quantity  float64
		threshold float64
	}{
		{"eau", 5000, 500},
		{"sucre", 300, 50},
		{"co2", 100, 10},
		{"jus d'orange", 200, 20},
		{"cafeine", 5, 1},
	}
	for _, ing := range seed {
		err := factory.Restock(ctx, ing.name,
			decimal.NewFromFloat(ing.quantity), decimal.NewFromFloat(ing.threshold))
		if err != nil {
			return fmt.Errorf("seeding stock: %w", err)
		}
	}

	// Register one soda line and one juice line.
	sodaProcess, err := domain.NewProductionProcess("soda-standard", domain.KindSoda, []domain.ProductionStep{
		{Name: "mixing", Duration: 15 * time.Minute},
		{Name: "carbonation", Duration: 10 * time.Minute},
		{Name: "bottling", Duration: 20 * time.Minute},
	})
	if err != nil {
		return err
	}
	sodaLine, err := domain.NewProductionLine("ligne-soda-1", 3, sodaProcess)
	if err != nil {
		return err
	}

	juiceProcess, err := domain.NewProductionProcess("juice-standard", domain.KindJuice, []domain.ProductionStep{
		{Name: "pressing", Duration: 25 * time.Minute},
		{Name: "pasteurization", Duration: 30 * time.Minute},
		{Name: "bottling", Duration: 20 * time.Minute},
	})
	if err != nil {
		return err
	}
	juiceLine, err := domain.NewProductionLine("ligne-jus-1", 2, juiceProcess)
	if err != nil {
		return err
	}

	for _, line := range []*domain.ProductionLine{sodaLine, juiceLine} {
		if err := factory.AddLine(ctx, line); err != nil {
			return err
		}
	}

	if err := factory.SetObjective(ctx, domain.KindSoda, 3); err != nil {
		return err
	}

	fmt.Printf("=== %s ===\n\n", factory.Name())

	// Successful productions.
	cola := domain.NewSoda("Cola Classique", decimal.NewFromInt(100), []domain.IngredientRequirement{
		{Name: "eau", Quantity: decimal.NewFromInt(95), Unit: "L"},
		{Name: "sucre", Quantity: decimal.NewFromInt(11), Unit: "kg"},
		{Name: "co2", Quantity: decimal.NewFromInt(2), Unit: "kg"},
	}, decimal.NewFromInt(110))

	orange := domain.NewJuice("Jus d'Orange Premium", decimal.NewFromInt(50), []domain.IngredientRequirement{
		{Name: "eau", Quantity: decimal.NewFromInt(10), Unit: "L"},
		{Name: "jus d'orange", Quantity: decimal.NewFromInt(45), Unit: "L"},
	}, decimal.NewFromInt(90))

	for _, beverage := range []domain.Beverage{cola, orange, cola} {
		record, err := factory.Produce(ctx, beverage, "")
		if err != nil {
			fmt.Printf("production failed: %v\n", err)
			continue
		}
		fmt.Printf("produced %-22s lot=%s line=%s cost=%s duration=%s\n",
			record.Beverage, record.LotNumber, record.Line,
			record.Cost.StringFixed(2), record.Duration)
	}

	// Expected failure: the recipe needs more caffeine than the stock holds.
	energy := domain.NewEnergyDrink("Boost Extreme", decimal.NewFromInt(20), []domain.IngredientRequirement{
		{Name: "eau", Quantity: decimal.NewFromInt(19), Unit: "L"},
		{Name: "cafeine", Quantity: decimal.NewFromInt(8), Unit: "kg"},
	}, decimal.NewFromInt(320))
	if _, err := factory.Produce(ctx, energy, ""); err != nil {
		fmt.Printf("\nexpected failure: %v\n", err)
	}

	// The juice line has capacity for 2 batches: the first of these runs
	// succeeds, the second fails and the consumed stock is rolled back.
	for i := 0; i < 2; i++ {
		record, err := factory.Produce(ctx, orange, "ligne-jus-1")
		if err != nil {
			fmt.Printf("expected failure: %v\n", err)
			continue
		}
		fmt.Printf("produced %-22s lot=%s line=%s\n", record.Beverage, record.LotNumber, record.Line)
	}

	printReport(ctx, factory)
	return nil
}

func printReport(ctx context.Context, factory *services.FactoryService) {
	report := factory.Report(ctx)

	fmt.Printf("\n=== Production report - %s ===\n", report.FactoryName)
	fmt.Printf("Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Total batches: %d, total cost: %s\n\n", report.TotalBatches, report.TotalCost.StringFixed(2))

	fmt.Println("Lines:")
	for _, line := range report.Lines {
		fmt.Printf("  %-14s batches=%d cost=%s utilization=%.0f%%\n",
			line.Line, line.Batches, line.TotalCost.StringFixed(2), line.Utilization*100)
	}

	fmt.Println("Beverage kinds:")
	for _, kind := range report.Kinds {
		progress := ""
		if kind.Objective > 0 {
			progress = fmt.Sprintf(" objective=%d/%d", kind.Batches, kind.Objective)
		}
		fmt.Printf("  %-14s batches=%d cost=%s%s\n",
			kind.Kind, kind.Batches, kind.TotalCost.StringFixed(2), progress)
	}

	if len(report.StockAlerts) > 0 {
		fmt.Println("Stock alerts:")
		for _, alert := range report.StockAlerts {
			fmt.Printf("  low stock: %s\n", alert)
		}
	} else {
		fmt.Println("Stock: all ingredients above their alert thresholds")
	}
}
