package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds database configuration.
type Config struct {
	// DSN is a libpq-style connection string or URL.
	DSN string

	// Connection pool settings.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoadConfigFromEnv reads database configuration from the environment.
// DB_CONNECTION is required; pool settings have sensible defaults.
func LoadConfigFromEnv() (Config, error) {
	dsn := os.Getenv("DB_CONNECTION")
	if dsn == "" {
		return Config{}, fmt.Errorf("DB_CONNECTION is required")
	}

	cfg := Config{
		DSN:             dsn,
		MaxOpenConns:    intFromEnv("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    intFromEnv("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
	return cfg, nil
}

func intFromEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
