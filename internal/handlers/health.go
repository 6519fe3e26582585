// internal/handlers/health.go
package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/gbeaudoin/bevfactory-be/internal/core/ports"
	"github.com/gbeaudoin/bevfactory-be/internal/pkg/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	service   ports.FactoryService
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service ports.FactoryService, cfg *config.Config, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service:   service,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus represents the health status of the application.
type HealthStatus struct {
	Status      string      `json:"status"`
	Version     string      `json:"version"`
	Environment string      `json:"environment"`
	Uptime      string      `json:"uptime"`
	Timestamp   time.Time   `json:"timestamp"`
	Factory     FactoryInfo `json:"factory"`
	System      SystemInfo  `json:"system"`
}

// FactoryInfo summarizes the factory state for health reporting.
type FactoryInfo struct {
	Name        string `json:"name"`
	Lines       int    `json:"lines"`
	StockAlerts int    `json:"stock_alerts"`
}

// SystemInfo represents system-level information.
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	NumCPU        int    `json:"num_cpu"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
}

// Health handles the /health endpoint.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lines := h.service.Lines(ctx)
	alerts := h.service.StockAlerts(ctx)

	status := "healthy"
	if len(alerts) > 0 {
		// Low stock does not make the service unhealthy, it is surfaced for
		// operators watching the endpoint.
		status = "degraded"
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	respondJSON(w, http.StatusOK, HealthStatus{
		Status:      status,
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now(),
		Factory: FactoryInfo{
			Name:        h.config.Factory.Name,
			Lines:       len(lines),
			StockAlerts: len(alerts),
		},
		System: SystemInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			NumCPU:        runtime.NumCPU(),
			MemoryAllocMB: mem.Alloc / 1024 / 1024,
		},
	})
}

// Readiness handles the /ready endpoint. The factory can accept production
// requests once at least one line is registered.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	lines := h.service.Lines(r.Context())
	if len(lines) == 0 {
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"ready":  false,
			"reason": "no production line registered",
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ready": true,
		"lines": len(lines),
	})
}
