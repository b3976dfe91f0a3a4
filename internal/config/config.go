// Package config loads service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds everything cmd/server needs to wire the service.
type Config struct {
	Port               int
	DatabaseURL        string
	StoreBackend       string
	SeedCatalog        bool
	LogLevel           string
	SessionIdleTimeout time.Duration
	SessionMaxAge      time.Duration
	EventBuffer        int
}

// Load reads an optional .env file (the first of envPath, or ./.env) and
// then the environment. A missing file is not an error.
func Load(envPath ...string) (*Config, error) {
	var err error
	if len(envPath) > 0 && envPath[0] != "" {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := &Config{
		Port:               getEnvAsInt("PORT", 8080),
		DatabaseURL:        getEnvAsString("DATABASE_URL", "file:showcase.db?_pragma=foreign_keys(1)"),
		StoreBackend:       getEnvAsString("STORE_BACKEND", BackendMemory),
		SeedCatalog:        getEnvAsBool("SEED_CATALOG", true),
		LogLevel:           getEnvAsString("LOG_LEVEL", "info"),
		SessionIdleTimeout: getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		SessionMaxAge:      getEnvAsDuration("SESSION_MAX_AGE", 24*time.Hour),
		EventBuffer:        getEnvAsInt("EVENT_BUFFER", 256),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendMemory, BackendSQLite, c.StoreBackend)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.SessionIdleTimeout <= 0 || c.SessionMaxAge <= 0 {
		return errors.New("session timeouts must be positive")
	}
	return nil
}

// getEnvAsString reads an environment variable as a string or returns the default.
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as an int or returns the default.
// A value that does not parse is logged and ignored.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		zap.L().Warn("environment variable is not an int, using default",
			zap.String("key", key), zap.String("value", valueStr), zap.Int("default", defaultValue))
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool reads an environment variable as a bool or returns the default.
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		zap.L().Warn("environment variable is not a bool, using default",
			zap.String("key", key), zap.String("value", valStr), zap.Bool("default", defaultValue))
		return defaultValue
	}
	return valBool
}

// getEnvAsDuration reads an environment variable as a time.Duration or returns the default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		zap.L().Warn("environment variable is not a duration, using default",
			zap.String("key", key), zap.String("value", valStr), zap.Duration("default", defaultValue))
		return defaultValue
	}
	return d
}
