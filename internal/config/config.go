package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration for the order desk tooling
type Config struct {
	Port      int
	LogLevel  string
	Env       string
	OrdersAPI OrdersAPIConfig
}

// OrdersAPIConfig holds the Remote Order Service settings
type OrdersAPIConfig struct {
	BaseURL string
	// Timeout of 0 means no client-side timeout; callers cancel via context.
	Timeout time.Duration
}

// getEnv retrieves the value of an environment variable or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

// Load reads the configuration from environment variables and returns a Config struct.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "3001"))

	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	timeoutSecs, err := strconv.Atoi(getEnv("HTTP_TIMEOUT", "0"))

	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	if timeoutSecs < 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must not be negative")
	}

	return &Config{
		Port:     port,
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Env:      getEnv("APP_ENV", "development"),
		OrdersAPI: OrdersAPIConfig{
			BaseURL: getEnv("ORDERS_API_URL", "http://localhost:3001"),
			Timeout: time.Duration(timeoutSecs) * time.Second,
		},
	}, nil
}
