// Package database owns the process-wide connection to the document store.
// A Connection is created once, connected once at boot and then injected
// into the storage collections; accessing the handle before a successful
// Connect returns ErrNotInitialized.
package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrNotInitialized = errors.New("database connection is not initialized")

// Driver identifies the storage backend selected by the connection string.
type Driver string

const (
	DriverMongo    Driver = "mongodb"
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
)

// DBConfig groups everything needed to open the storage connection.
type DBConfig struct {
	URL    string // connection string; its scheme selects Driver
	Driver Driver
	Name   string // MongoDB database; defaults to the one in URL

	// Pool sizing, passed to the driver's own pool.
	MaxConns int32
	MinConns int32

	// MaxRetries is the number of connection attempts (1 = no retry).
	MaxRetries     int
	RetryDelay     time.Duration // base delay, doubled after each attempt
	ConnectTimeout time.Duration // per attempt
}

// Connection is the lifecycle shared by every backend.
type Connection interface {
	Driver() Driver
	Connect(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New returns an unconnected Connection for cfg.Driver.
func New(cfg *DBConfig) (Connection, error) {
	switch cfg.Driver {
	case DriverMongo:
		return NewMongoDB(cfg), nil
	case DriverPostgres:
		return NewPostgresDB(cfg), nil
	case DriverMemory:
		return NewMemoryDB(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// DetectDriver maps a connection string scheme to a Driver.
// It returns "" for unknown schemes.
func DetectDriver(connString string) Driver {
	scheme, _, found := strings.Cut(connString, "://")
	if !found {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return DriverMongo
	case "postgres", "postgresql":
		return DriverPostgres
	case "memory":
		return DriverMemory
	default:
		return ""
	}
}

// Redact hides the password of a connection string for logging.
func Redact(connString string) string {
	u, err := url.Parse(connString)
	if err != nil {
		return "<unparseable connection string>"
	}
	return u.Redacted()
}

// connectWithRetry runs attempt up to cfg.MaxRetries times with exponential
// backoff: delay = RetryDelay * 2^(attempt-1).
func connectWithRetry(ctx context.Context, cfg *DBConfig, attempt func(ctx context.Context) error) error {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for n := 1; n <= maxRetries; n++ {
		log.Info().Int("attempt", n).Int("max", maxRetries).Str("driver", string(cfg.Driver)).
			Msg("[DATABASE] Connection attempt")

		attemptCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		lastErr = attempt(attemptCtx)
		cancel()

		if lastErr == nil {
			log.Info().Int("attempt", n).Msg("[DATABASE] Successfully connected")
			return nil
		}
		log.Warn().Err(lastErr).Int("attempt", n).Msg("[DATABASE] Attempt failed")

		if n < maxRetries {
			delay := cfg.RetryDelay * time.Duration(1<<uint(n-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}
