package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	Port        int
	CatalogPath string
	LogLevel    string
	Development bool
	Headless    bool
	Version     string
}

// Default returns the configuration used when nothing else is set
func Default() Config {
	return Config{
		Port:     8080,
		LogLevel: "info",
		Version:  "dev",
	}
}

// Apply overlays non-zero values from settings, then the environment.
// Explicit command-line flags are applied by the caller afterwards.
func (c Config) Apply(settings *Settings) Config {
	if settings != nil {
		if settings.Port != 0 {
			c.Port = settings.Port
		}
		if settings.CatalogPath != "" {
			c.CatalogPath = settings.CatalogPath
		}
		if settings.LogLevel != "" {
			c.LogLevel = settings.LogLevel
		}
		if settings.Headless {
			c.Headless = true
		}
	}

	c.Port = getEnvInt("KINETICS_PORT", c.Port)
	c.CatalogPath = getEnv("KINETICS_CATALOG", c.CatalogPath)
	c.LogLevel = getEnv("KINETICS_LOG_LEVEL", c.LogLevel)
	c.Development = getEnvBool("KINETICS_DEV", c.Development)
	c.Headless = getEnvBool("KINETICS_HEADLESS", c.Headless)

	return c
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return fmt.Errorf("catalog file: %w", err)
		}
	}
	return nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
