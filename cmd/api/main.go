// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gbeaudoin/bevfactory-be/internal/core/domain"
	"github.com/gbeaudoin/bevfactory-be/internal/core/services"
	"github.com/gbeaudoin/bevfactory-be/internal/handlers"
	"github.com/gbeaudoin/bevfactory-be/internal/handlers/middleware"
	"github.com/gbeaudoin/bevfactory-be/internal/pkg/config"
	"github.com/gbeaudoin/bevfactory-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting beverage factory service",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure the logger with the loaded settings.
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("factory", cfg.Factory.Name),
	)

	deps := initializeDependencies(cfg, slogger)
	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies.
type dependencies struct {
	factoryService    *services.FactoryService
	stockHandler      *handlers.StockHandler
	productionHandler *handlers.ProductionHandler
	reportHandler     *handlers.ReportHandler
	healthHandler     *handlers.HealthHandler
}

func initializeDependencies(cfg *config.Config, slogger *logger.Logger) *dependencies {
	stock := domain.NewStock()
	factoryService := services.NewFactoryService(cfg.Factory.Name, stock, slogger.Logger)

	return &dependencies{
		factoryService:    factoryService,
		stockHandler:      handlers.NewStockHandler(factoryService, cfg.Factory, slogger.Logger),
		productionHandler: handlers.NewProductionHandler(factoryService, cfg.Factory, slogger.Logger),
		reportHandler:     handlers.NewReportHandler(factoryService, slogger.Logger),
		healthHandler:     handlers.NewHealthHandler(factoryService, cfg, slogger.Logger),
	}
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Apply middleware in reverse order (innermost first).
	var handler http.Handler = mux
	handler = middleware.RequestID(handler)
	handler = middleware.Logger(slogger)(handler)
	handler = middleware.Recovery(slogger.Logger)(handler)

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}
	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	}

	// Stock endpoints
	mux.HandleFunc("POST "+apiV1+"/stock", deps.stockHandler.Restock)
	mux.HandleFunc("GET "+apiV1+"/stock", deps.stockHandler.GetStock)
	mux.HandleFunc("GET "+apiV1+"/stock/alerts", deps.stockHandler.GetAlerts)

	// Production endpoints
	mux.HandleFunc("POST "+apiV1+"/production", deps.productionHandler.Produce)
	mux.HandleFunc("GET "+apiV1+"/production/batches", deps.productionHandler.ListBatches)
	mux.HandleFunc("POST "+apiV1+"/production/lines", deps.productionHandler.RegisterLine)
	mux.HandleFunc("GET "+apiV1+"/production/lines", deps.productionHandler.ListLines)
	mux.HandleFunc("POST "+apiV1+"/production/objectives", deps.productionHandler.SetObjective)

	// Report endpoints
	mux.HandleFunc("GET "+apiV1+"/report", deps.reportHandler.GetReport)
	mux.HandleFunc("GET "+apiV1+"/report/export", deps.reportHandler.Export)
}
