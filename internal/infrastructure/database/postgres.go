package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// PostgresDB wraps the shared pgx connection pool.
type PostgresDB struct {
	Config *DBConfig

	mu   sync.RWMutex
	pool *pgxpool.Pool
}

func NewPostgresDB(cfg *DBConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

func (db *PostgresDB) Driver() Driver {
	return DriverPostgres
}

// configurePool parses the connection string and applies the pool sizing.
func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.Config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if db.Config.MaxConns > 0 {
		config.MaxConns = db.Config.MaxConns
	}
	config.MinConns = db.Config.MinConns
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

func (db *PostgresDB) Connect(ctx context.Context) error {
	log.Info().Str("url", Redact(db.Config.URL)).Msg("[DATABASE] Initializing PostgreSQL connection...")

	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	var pool *pgxpool.Pool
	err = connectWithRetry(ctx, db.Config, func(ctx context.Context) error {
		p, err := pgxpool.NewWithConfig(ctx, config)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return fmt.Errorf("ping failed: %w", err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.mu.Lock()
	db.pool = pool
	db.mu.Unlock()

	log.Info().Msg("[DATABASE] PostgreSQL connection established successfully")
	return nil
}

// Acquire returns the connected pool.
func (db *PostgresDB) Acquire() (*pgxpool.Pool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.pool == nil {
		return nil, ErrNotInitialized
	}
	return db.pool, nil
}

func (db *PostgresDB) Ping(ctx context.Context) error {
	pool, err := db.Acquire()
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes every connection of the pool. Calling it again is a no-op.
func (db *PostgresDB) Close(context.Context) error {
	db.mu.Lock()
	pool := db.pool
	db.pool = nil
	db.mu.Unlock()

	if pool == nil {
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	pool.Close()
	return nil
}
