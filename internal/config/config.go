package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"library-api/internal/infrastructure/database"
)

// Config holds the whole application configuration.
// It is populated from environment variables (optionally loaded from .env).
type Config struct {
	App      AppConfig
	Database database.DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Host        string
	Port        string
}

// Addr is the listen address host:port.
func (a AppConfig) Addr() string {
	return a.Host + ":" + a.Port
}

type RedisConfig struct {
	Addr     string // empty disables the cache
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	db, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Host:        getEnv("HOST", "0.0.0.0"),
			Port:        getEnv("PORT", "8080"),
		},
		Database: *db,
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      ttl,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.App.Port)
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("unsupported storage connection string scheme in %q", database.Redact(c.Database.URL))
	}
	if c.Database.MaxRetries < 1 {
		return fmt.Errorf("DB_MAX_RETRIES must be at least 1")
	}
	if c.Redis.Enabled() && c.Redis.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
