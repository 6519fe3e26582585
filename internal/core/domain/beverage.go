// internal/core/domain/beverage.go
package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BeverageKind represents the beverage families the factory knows how to produce.
type BeverageKind string

// Beverage kind constants
const (
	KindWater       BeverageKind = "water"
	KindJuice       BeverageKind = "juice"
	KindSoda        BeverageKind = "soda"
	KindEnergyDrink BeverageKind = "energy_drink"
)

// Valid reports whether the kind is one the factory recognizes.
func (k BeverageKind) Valid() bool {
	switch k {
	case KindWater, KindJuice, KindSoda, KindEnergyDrink:
		return true
	}
	return false
}

// IngredientRequirement is one line of a beverage recipe: the ingredient name,
// the quantity needed for one production run, and the unit of measure. Units
// are assumed consistent with the stock's units; no conversion is performed.
type IngredientRequirement struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// Beverage is the narrow contract the production subsystem consumes: a recipe
// and a declared production cost. The concrete variants below implement it,
// but any type satisfying the interface can be produced.
type Beverage interface {
	Name() string
	Kind() BeverageKind
	Requirements() []IngredientRequirement
	ProductionCost() decimal.Decimal
	Validate() error
}

// Per-liter base costs and surcharges for the concrete variants.
var (
	waterCostPerLiter  = decimal.NewFromFloat(0.5)
	juiceCostPerLiter  = decimal.NewFromFloat(1.5)
	sodaCostPerLiter   = decimal.NewFromFloat(1.0)
	energyCostPerLiter = decimal.NewFromFloat(2.0)

	sparklingSurcharge = decimal.NewFromFloat(1.2)

	oneHundred  = decimal.NewFromInt(100)
	oneThousand = decimal.NewFromInt(1000)
)

// beverageSpec carries the fields shared by all concrete variants.
type beverageSpec struct {
	name        string
	volume      decimal.Decimal // liters
	ingredients []IngredientRequirement
}

func (b beverageSpec) Name() string { return b.name }

func (b beverageSpec) Requirements() []IngredientRequirement {
	out := make([]IngredientRequirement, len(b.ingredients))
	copy(out, b.ingredients)
	return out
}

func (b beverageSpec) validateSpec() error {
	if b.name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBeverage)
	}
	if b.volume.Sign() <= 0 {
		return fmt.Errorf("%w: volume must be positive", ErrInvalidBeverage)
	}
	for _, ing := range b.ingredients {
		if ing.Name == "" {
			return fmt.Errorf("%w: ingredient name is required", ErrInvalidBeverage)
		}
		if ing.Quantity.IsNegative() {
			return fmt.Errorf("%w: ingredient %s has negative quantity", ErrInvalidQuantity, ing.Name)
		}
	}
	return nil
}

func (b beverageSpec) hasIngredient(match func(name string) bool) bool {
	for _, ing := range b.ingredients {
		if match(strings.ToLower(ing.Name)) {
			return true
		}
	}
	return false
}

// Water is still or sparkling water.
type Water struct {
	beverageSpec
	Sparkling bool
}

// NewWater creates a water beverage.
func NewWater(name string, volume decimal.Decimal, ingredients []IngredientRequirement, sparkling bool) *Water {
	return &Water{
		beverageSpec: beverageSpec{name: name, volume: volume, ingredients: ingredients},
		Sparkling:    sparkling,
	}
}

func (w *Water) Kind() BeverageKind { return KindWater }

// ProductionCost is volume-based, with a surcharge for carbonation.
func (w *Water) ProductionCost() decimal.Decimal {
	cost := w.volume.Mul(waterCostPerLiter)
	if w.Sparkling {
		cost = cost.Mul(sparklingSurcharge)
	}
	return cost
}

// Validate rejects ingredients that do not belong in water.
func (w *Water) Validate() error {
	if err := w.validateSpec(); err != nil {
		return err
	}
	allowed := map[string]bool{"eau": true, "mineraux": true, "co2": true}
	for _, ing := range w.ingredients {
		if !allowed[strings.ToLower(ing.Name)] {
			return fmt.Errorf("%w: ingredient %s is not allowed in water", ErrInvalidBeverage, ing.Name)
		}
	}
	return nil
}

// Juice is a fruit juice with a declared fruit content percentage.
type Juice struct {
	beverageSpec
	FruitContent decimal.Decimal // percent, 0-100
}

// NewJuice creates a juice beverage.
func NewJuice(name string, volume decimal.Decimal, ingredients []IngredientRequirement, fruitContent decimal.Decimal) *Juice {
	return &Juice{
		beverageSpec: beverageSpec{name: name, volume: volume, ingredients: ingredients},
		FruitContent: fruitContent,
	}
}

func (j *Juice) Kind() BeverageKind { return KindJuice }

// ProductionCost scales with the fruit content.
func (j *Juice) ProductionCost() decimal.Decimal {
	surcharge := j.FruitContent.Div(oneHundred).Mul(decimal.NewFromFloat(0.5))
	return j.volume.Mul(juiceCostPerLiter).Mul(decimal.NewFromInt(1).Add(surcharge))
}

var fruitNames = []string{"fruit", "pomme", "orange", "raisin", "ananas", "mangue"}

// Validate requires a plausible fruit content and at least one fruit ingredient.
func (j *Juice) Validate() error {
	if err := j.validateSpec(); err != nil {
		return err
	}
	if j.FruitContent.IsNegative() || j.FruitContent.GreaterThan(oneHundred) {
		return fmt.Errorf("%w: fruit content must be between 0 and 100", ErrInvalidBeverage)
	}
	ok := j.hasIngredient(func(name string) bool {
		for _, fruit := range fruitNames {
			if strings.Contains(name, fruit) {
				return true
			}
		}
		return false
	})
	if !ok {
		return fmt.Errorf("%w: juice requires a fruit ingredient", ErrInvalidBeverage)
	}
	return nil
}

// Soda is a sweetened carbonated beverage.
type Soda struct {
	beverageSpec
	SugarPerLiter decimal.Decimal // grams per liter
}

// NewSoda creates a soda beverage.
func NewSoda(name string, volume decimal.Decimal, ingredients []IngredientRequirement, sugarPerLiter decimal.Decimal) *Soda {
	return &Soda{
		beverageSpec:  beverageSpec{name: name, volume: volume, ingredients: ingredients},
		SugarPerLiter: sugarPerLiter,
	}
}

func (s *Soda) Kind() BeverageKind { return KindSoda }

// ProductionCost scales with the sugar rate.
func (s *Soda) ProductionCost() decimal.Decimal {
	surcharge := s.SugarPerLiter.Div(oneHundred).Mul(decimal.NewFromFloat(0.1))
	return s.volume.Mul(sodaCostPerLiter).Mul(decimal.NewFromInt(1).Add(surcharge))
}

// Validate requires water, sugar and carbonation in the recipe.
func (s *Soda) Validate() error {
	if err := s.validateSpec(); err != nil {
		return err
	}
	if s.SugarPerLiter.IsNegative() {
		return fmt.Errorf("%w: sugar rate cannot be negative", ErrInvalidBeverage)
	}
	for _, required := range []string{"eau", "sucre", "co2"} {
		if !s.hasIngredient(func(name string) bool { return strings.Contains(name, required) }) {
			return fmt.Errorf("%w: soda requires ingredient %s", ErrInvalidBeverage, required)
		}
	}
	return nil
}

// EnergyDrink is a caffeinated beverage.
type EnergyDrink struct {
	beverageSpec
	CaffeinePerLiter decimal.Decimal // milligrams per liter
}

// NewEnergyDrink creates an energy drink beverage.
func NewEnergyDrink(name string, volume decimal.Decimal, ingredients []IngredientRequirement, caffeinePerLiter decimal.Decimal) *EnergyDrink {
	return &EnergyDrink{
		beverageSpec:     beverageSpec{name: name, volume: volume, ingredients: ingredients},
		CaffeinePerLiter: caffeinePerLiter,
	}
}

func (e *EnergyDrink) Kind() BeverageKind { return KindEnergyDrink }

// ProductionCost scales with the caffeine rate.
func (e *EnergyDrink) ProductionCost() decimal.Decimal {
	surcharge := e.CaffeinePerLiter.Div(oneThousand).Mul(decimal.NewFromFloat(0.5))
	return e.volume.Mul(energyCostPerLiter).Mul(decimal.NewFromInt(1).Add(surcharge))
}

var caffeineSources = []string{"cafeine", "taurine", "guarana"}

// Validate requires at least one caffeine source in the recipe.
func (e *EnergyDrink) Validate() error {
	if err := e.validateSpec(); err != nil {
		return err
	}
	if e.CaffeinePerLiter.IsNegative() {
		return fmt.Errorf("%w: caffeine rate cannot be negative", ErrInvalidBeverage)
	}
	ok := e.hasIngredient(func(name string) bool {
		for _, source := range caffeineSources {
			if strings.Contains(name, source) {
				return true
			}
		}
		return false
	})
	if !ok {
		return fmt.Errorf("%w: energy drink requires a caffeine source", ErrInvalidBeverage)
	}
	return nil
}
