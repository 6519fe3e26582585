// internal/pkg/config/config.go
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig
	Factory  FactoryConfig
	Security SecurityConfig
	Server   ServerConfig
}

// AppConfig holds application-specific configuration.
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// FactoryConfig holds the factory defaults.
type FactoryConfig struct {
	Name                  string
	DefaultAlertThreshold float64
	DefaultLineCapacity   int
	MaxLines              int
}

// SecurityConfig holds security configuration for the HTTP surface.
type SecurityConfig struct {
	RateLimitRequests int
	RateLimitDuration time.Duration
	AllowedOrigins    []string
	SecureHeaders     bool
	RequestIDHeader   string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host              string
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	GracefulTimeout   time.Duration
	EnableHealthCheck bool
}

// Load loads configuration from environment variables, with a .env file in
// development.
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(env)

	cfg := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Environment: env,
			Version:     viper.GetString("APP_VERSION"),
			LogLevel:    viper.GetString("LOG_LEVEL"),
			LogFormat:   viper.GetString("LOG_FORMAT"),
			Debug:       viper.GetBool("APP_DEBUG"),
		},
		Factory: FactoryConfig{
			Name:                  viper.GetString("FACTORY_NAME"),
			DefaultAlertThreshold: viper.GetFloat64("FACTORY_DEFAULT_ALERT_THRESHOLD"),
			DefaultLineCapacity:   viper.GetInt("FACTORY_DEFAULT_LINE_CAPACITY"),
			MaxLines:              viper.GetInt("FACTORY_MAX_LINES"),
		},
		Security: SecurityConfig{
			RateLimitRequests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			RateLimitDuration: viper.GetDuration("RATE_LIMIT_DURATION"),
			AllowedOrigins:    viper.GetStringSlice("ALLOWED_ORIGINS"),
			SecureHeaders:     viper.GetBool("SECURE_HEADERS"),
			RequestIDHeader:   viper.GetString("REQUEST_ID_HEADER"),
		},
		Server: ServerConfig{
			Host:              viper.GetString("SERVER_HOST"),
			Port:              viper.GetString("SERVER_PORT"),
			ReadTimeout:       viper.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:      viper.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:       viper.GetDuration("SERVER_IDLE_TIMEOUT"),
			MaxHeaderBytes:    viper.GetInt("SERVER_MAX_HEADER_BYTES"),
			GracefulTimeout:   viper.GetDuration("SERVER_GRACEFUL_TIMEOUT"),
			EnableHealthCheck: viper.GetBool("ENABLE_HEALTH_CHECK"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("configuration validated",
		slog.String("environment", cfg.App.Environment),
		slog.String("factory", cfg.Factory.Name))
	return cfg, nil
}

func setDefaults(env string) {
	viper.SetDefault("APP_NAME", "bevfactory-api")
	viper.SetDefault("APP_VERSION", "dev")
	viper.SetDefault("APP_DEBUG", env == "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	viper.SetDefault("FACTORY_NAME", "Usine Centrale")
	viper.SetDefault("FACTORY_DEFAULT_ALERT_THRESHOLD", 10.0)
	viper.SetDefault("FACTORY_DEFAULT_LINE_CAPACITY", 100)
	viper.SetDefault("FACTORY_MAX_LINES", 32)

	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", time.Minute)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("SECURE_HEADERS", env == "production")
	viper.SetDefault("REQUEST_ID_HEADER", "X-Request-ID")

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	viper.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)
	viper.SetDefault("SERVER_IDLE_TIMEOUT", 60*time.Second)
	viper.SetDefault("SERVER_MAX_HEADER_BYTES", 1<<20)
	viper.SetDefault("SERVER_GRACEFUL_TIMEOUT", 30*time.Second)
	viper.SetDefault("ENABLE_HEALTH_CHECK", true)
}

// GetServerAddress returns the host:port the HTTP server binds to.
func (c *Config) GetServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}
