// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// ContextKey represents keys for context values carried into log records.
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyTraceID   ContextKey = "trace_id"
	ContextKeyClientIP  ContextKey = "client_ip"
	ContextKeyMethod    ContextKey = "method"
	ContextKeyPath      ContextKey = "path"
)

// contextKeys are the keys WithContext promotes into attributes.
var contextKeys = []ContextKey{
	ContextKeyRequestID,
	ContextKeyTraceID,
	ContextKeyClientIP,
	ContextKeyMethod,
	ContextKeyPath,
}

// Config holds logger configuration.
type Config struct {
	Level       string
	Format      string // json, text
	AddSource   bool
	ServiceName string
	Environment string
}

// Logger wraps slog.Logger with context enrichment.
type Logger struct {
	*slog.Logger
	config *Config
}

// SetupLogger initializes the logger, installs it as the slog default and
// returns it.
func SetupLogger(level, format string) *Logger {
	logger := NewLogger(&Config{
		Level:       level,
		Format:      format,
		AddSource:   strings.EqualFold(level, "debug"),
		ServiceName: os.Getenv("SERVICE_NAME"),
		Environment: os.Getenv("APP_ENV"),
	})
	slog.SetDefault(logger.Logger)
	return logger
}

// NewLogger creates a logger from the given configuration.
func NewLogger(config *Config) *Logger {
	if config == nil {
		config = &Config{Level: "info", Format: "json"}
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(config.Level),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case "text", "console":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	base := slog.New(handler)
	if config.ServiceName != "" {
		base = base.With(slog.String("service", config.ServiceName))
	}
	if config.Environment != "" {
		base = base.With(slog.String("environment", config.Environment))
	}

	return &Logger{Logger: base, config: config}
}

// WithContext returns a logger enriched with the request-scoped values the
// middleware stored in the context.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	attrs := make([]any, 0, len(contextKeys))
	for _, key := range contextKeys {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			attrs = append(attrs, slog.String(string(key), value))
		}
	}
	if len(attrs) == 0 {
		return l
	}
	return &Logger{Logger: l.Logger.With(attrs...), config: l.config}
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
