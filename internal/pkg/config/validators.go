// internal/pkg/config/validators.go
package config

import (
	"fmt"
	"strconv"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if !validLogLevels[c.App.LogLevel] {
		return fmt.Errorf("invalid log level %q", c.App.LogLevel)
	}
	if c.App.LogFormat != "json" && c.App.LogFormat != "text" {
		return fmt.Errorf("invalid log format %q", c.App.LogFormat)
	}

	if c.Factory.Name == "" {
		return fmt.Errorf("factory name is required")
	}
	if c.Factory.DefaultAlertThreshold < 0 {
		return fmt.Errorf("factory default alert threshold cannot be negative")
	}
	if c.Factory.DefaultLineCapacity <= 0 {
		return fmt.Errorf("factory default line capacity must be positive")
	}
	if c.Factory.MaxLines <= 0 {
		return fmt.Errorf("factory max lines must be positive")
	}

	if c.Security.RateLimitRequests < 0 {
		return fmt.Errorf("rate limit requests cannot be negative")
	}

	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port %q", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if c.IsProduction() && !c.Security.SecureHeaders {
		return fmt.Errorf("secure headers must be enabled in production")
	}

	return nil
}
