// internal/handlers/stock.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/gbeaudoin/bevfactory-be/internal/core/ports"
	"github.com/gbeaudoin/bevfactory-be/internal/pkg/config"
)

// StockHandler handles stock-related HTTP requests.
type StockHandler struct {
	service  ports.FactoryService
	defaults config.FactoryConfig
	logger   *slog.Logger
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(service ports.FactoryService, defaults config.FactoryConfig, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		service:  service,
		defaults: defaults,
		logger:   logger.With(slog.String("handler", "stock")),
	}
}

// RestockRequest is the payload for a stock delivery. When alert_threshold is
// omitted the factory default applies.
type RestockRequest struct {
	Ingredient     string           `json:"ingredient"`
	Quantity       decimal.Decimal  `json:"quantity"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold,omitempty"`
}

// Validate validates the restock request.
func (r *RestockRequest) Validate() error {
	if r.Ingredient == "" {
		return fmt.Errorf("ingredient is required")
	}
	if r.Quantity.IsNegative() {
		return fmt.Errorf("quantity cannot be negative")
	}
	if r.AlertThreshold != nil && r.AlertThreshold.IsNegative() {
		return fmt.Errorf("alert_threshold cannot be negative")
	}
	return nil
}

// Restock handles POST /api/v1/stock
func (h *StockHandler) Restock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	threshold := decimal.NewFromFloat(h.defaults.DefaultAlertThreshold)
	if req.AlertThreshold != nil {
		threshold = *req.AlertThreshold
	}

	if err := h.service.Restock(ctx, req.Ingredient, req.Quantity, threshold); err != nil {
		h.logger.ErrorContext(ctx, "failed to restock ingredient",
			slog.String("ingredient", req.Ingredient),
			slog.String("error", err.Error()))
		respondError(w, statusFromError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "ingredient restocked",
		"ingredient": req.Ingredient,
	})
}

// GetStock handles GET /api/v1/stock
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	levels := h.service.StockLevels(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ingredients": levels,
		"count":       len(levels),
	})
}

// GetAlerts handles GET /api/v1/stock/alerts
func (h *StockHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	alerts := h.service.StockAlerts(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": alerts,
		"count":  len(alerts),
	})
}
