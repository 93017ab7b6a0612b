package config

import (
	"fmt"
	"strconv"
	"time"

	"library-api/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the storage settings from environment variables.
// MONGODB_URL wins over DATABASE_URL; the scheme selects the backend.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	url := getEnv("MONGODB_URL", getEnv("DATABASE_URL", "mongodb://localhost:27017/library"))

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	retryDelay, err := time.ParseDuration(getEnv("DB_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_RETRY_DELAY: %w", err)
	}

	connectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	return &database.DBConfig{
		URL:            url,
		Driver:         database.DetectDriver(url),
		Name:           getEnv("DB_NAME", ""),
		MaxConns:       int32(maxConns),
		MinConns:       int32(minConns),
		MaxRetries:     maxRetries,
		RetryDelay:     retryDelay,
		ConnectTimeout: connectTimeout,
	}, nil
}
