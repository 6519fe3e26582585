// internal/handlers/production.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gbeaudoin/bevfactory-be/internal/core/domain"
	"github.com/gbeaudoin/bevfactory-be/internal/core/ports"
	"github.com/gbeaudoin/bevfactory-be/internal/pkg/config"
)

// ProductionHandler handles production-related HTTP requests.
type ProductionHandler struct {
	service  ports.FactoryService
	defaults config.FactoryConfig
	logger   *slog.Logger
}

// NewProductionHandler creates a new production handler.
func NewProductionHandler(service ports.FactoryService, defaults config.FactoryConfig, logger *slog.Logger) *ProductionHandler {
	return &ProductionHandler{
		service:  service,
		defaults: defaults,
		logger:   logger.With(slog.String("handler", "production")),
	}
}

// IngredientRequest is one recipe line of a beverage payload.
type IngredientRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// BeverageRequest describes the beverage to produce. Attrs carries the
// kind-specific attribute: sparkling, fruit_content, sugar_per_liter or
// caffeine_per_liter.
type BeverageRequest struct {
	Kind             string              `json:"kind"`
	Name             string              `json:"name"`
	VolumeLiters     decimal.Decimal     `json:"volume_liters"`
	Ingredients      []IngredientRequest `json:"ingredients"`
	Sparkling        bool                `json:"sparkling,omitempty"`
	FruitContent     decimal.Decimal     `json:"fruit_content,omitempty"`
	SugarPerLiter    decimal.Decimal     `json:"sugar_per_liter,omitempty"`
	CaffeinePerLiter decimal.Decimal     `json:"caffeine_per_liter,omitempty"`
}

// Validate validates the beverage request.
func (r *BeverageRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("beverage name is required")
	}
	if !domain.BeverageKind(r.Kind).Valid() {
		return fmt.Errorf("unknown beverage kind %q", r.Kind)
	}
	if r.VolumeLiters.Sign() <= 0 {
		return fmt.Errorf("volume_liters must be positive")
	}
	return nil
}

// ToDomain converts the request to a beverage variant.
func (r *BeverageRequest) ToDomain() domain.Beverage {
	ingredients := make([]domain.IngredientRequirement, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		unit := ing.Unit
		if unit == "" {
			unit = "L"
		}
		ingredients = append(ingredients, domain.IngredientRequirement{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     unit,
		})
	}

	switch domain.BeverageKind(r.Kind) {
	case domain.KindWater:
		return domain.NewWater(r.Name, r.VolumeLiters, ingredients, r.Sparkling)
	case domain.KindJuice:
		return domain.NewJuice(r.Name, r.VolumeLiters, ingredients, r.FruitContent)
	case domain.KindSoda:
		return domain.NewSoda(r.Name, r.VolumeLiters, ingredients, r.SugarPerLiter)
	default:
		return domain.NewEnergyDrink(r.Name, r.VolumeLiters, ingredients, r.CaffeinePerLiter)
	}
}

// ProduceRequest is the payload for one production run.
type ProduceRequest struct {
	Beverage BeverageRequest `json:"beverage"`
	Line     string          `json:"line,omitempty"`
}

// Produce handles POST /api/v1/production
func (h *ProductionHandler) Produce(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProduceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Beverage.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.service.Produce(ctx, req.Beverage.ToDomain(), req.Line)
	if err != nil {
		h.logger.WarnContext(ctx, "production request failed",
			slog.String("beverage", req.Beverage.Name),
			slog.String("line", req.Line),
			slog.String("error", err.Error()))
		respondError(w, statusFromError(err), err.Error())
		return
	}

	h.logger.InfoContext(ctx, "production request completed",
		slog.String("lot_number", record.LotNumber),
		slog.String("beverage", record.Beverage))
	respondJSON(w, http.StatusCreated, record)
}

// ListBatches handles GET /api/v1/production/batches
func (h *ProductionHandler) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches := h.service.Batches(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"batches": batches,
		"count":   len(batches),
	})
}

// StepRequest is one step of a process payload. Durations are declared in
// minutes, matching how the factory plans its processes.
type StepRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ProcessRequest describes the process a new line is bound to.
type ProcessRequest struct {
	Name  string        `json:"name"`
	Kind  string        `json:"kind"`
	Steps []StepRequest `json:"steps"`
}

// RegisterLineRequest is the payload for registering a production line.
// When capacity is omitted the factory default applies.
type RegisterLineRequest struct {
	Name     string         `json:"name"`
	Capacity int            `json:"capacity,omitempty"`
	Process  ProcessRequest `json:"process"`
}

// Validate validates the register line request.
func (r *RegisterLineRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("line name is required")
	}
	if r.Capacity < 0 {
		return fmt.Errorf("capacity cannot be negative")
	}
	if r.Process.Name == "" {
		return fmt.Errorf("process name is required")
	}
	if !domain.BeverageKind(r.Process.Kind).Valid() {
		return fmt.Errorf("unknown beverage kind %q", r.Process.Kind)
	}
	for _, step := range r.Process.Steps {
		if step.Name == "" {
			return fmt.Errorf("step name is required")
		}
		if step.DurationMinutes < 0 {
			return fmt.Errorf("step %s: duration cannot be negative", step.Name)
		}
	}
	return nil
}

// RegisterLine handles POST /api/v1/production/lines
func (h *ProductionHandler) RegisterLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Capacity == 0 {
		req.Capacity = h.defaults.DefaultLineCapacity
	}
	if h.defaults.MaxLines > 0 && len(h.service.Lines(ctx)) >= h.defaults.MaxLines {
		respondError(w, http.StatusConflict,
			fmt.Sprintf("factory already runs its maximum of %d lines", h.defaults.MaxLines))
		return
	}

	steps := make([]domain.ProductionStep, 0, len(req.Process.Steps))
	for _, step := range req.Process.Steps {
		steps = append(steps, domain.ProductionStep{
			Name:     step.Name,
			Duration: time.Duration(step.DurationMinutes) * time.Minute,
		})
	}
	process, err := domain.NewProductionProcess(req.Process.Name, domain.BeverageKind(req.Process.Kind), steps)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	line, err := domain.NewProductionLine(req.Name, req.Capacity, process)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.AddLine(ctx, line); err != nil {
		h.logger.WarnContext(ctx, "failed to register line",
			slog.String("line", req.Name),
			slog.String("error", err.Error()))
		respondError(w, statusFromError(err), err.Error())
		return
	}

	h.logger.InfoContext(ctx, "production line registered",
		slog.String("line", req.Name),
		slog.Int("capacity", req.Capacity))
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "production line registered",
		"line":    req.Name,
	})
}

// ListLines handles GET /api/v1/production/lines
func (h *ProductionHandler) ListLines(w http.ResponseWriter, r *http.Request) {
	lines := h.service.Lines(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"lines": lines,
		"count": len(lines),
	})
}

// ObjectiveRequest is the payload for a per-kind production objective.
type ObjectiveRequest struct {
	Kind   string `json:"kind"`
	Target int    `json:"target"`
}

// SetObjective handles POST /api/v1/production/objectives
func (h *ProductionHandler) SetObjective(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SetObjective(ctx, domain.BeverageKind(req.Kind), req.Target); err != nil {
		respondError(w, statusFromError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "objective set",
		"kind":    req.Kind,
		"target":  req.Target,
	})
}
