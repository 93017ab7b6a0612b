package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// defaultMongoDatabase is the database the MongoDB drivers fall back to when
// the connection string names none.
const defaultMongoDatabase = "test"

// MongoDB wraps the shared *mongo.Client. The client pools connections
// internally and is safe for concurrent use by every request.
type MongoDB struct {
	Config *DBConfig

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoDB(cfg *DBConfig) *MongoDB {
	return &MongoDB{Config: cfg}
}

func (m *MongoDB) Driver() Driver {
	return DriverMongo
}

// Connect creates the client and verifies it with a ping.
func (m *MongoDB) Connect(ctx context.Context) error {
	log.Info().Str("url", Redact(m.Config.URL)).Msg("[DATABASE] Initializing MongoDB connection...")

	name, err := mongoDatabaseName(m.Config)
	if err != nil {
		return err
	}

	opts := options.Client().
		ApplyURI(m.Config.URL).
		SetConnectTimeout(m.Config.ConnectTimeout)
	if m.Config.MaxConns > 0 {
		opts.SetMaxPoolSize(uint64(m.Config.MaxConns))
	}
	if m.Config.MinConns > 0 {
		opts.SetMinPoolSize(uint64(m.Config.MinConns))
	}

	var client *mongo.Client
	err = connectWithRetry(ctx, m.Config, func(ctx context.Context) error {
		c, err := mongo.Connect(ctx, opts)
		if err != nil {
			return err
		}
		if err := c.Ping(ctx, readpref.Primary()); err != nil {
			_ = c.Disconnect(context.Background())
			return fmt.Errorf("ping failed: %w", err)
		}
		client = c
		return nil
	})
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	m.mu.Lock()
	m.client = client
	m.db = client.Database(name)
	m.mu.Unlock()

	log.Info().Str("database", name).Msg("[DATABASE] MongoDB connection established successfully")
	return nil
}

// Database returns the connected database handle.
func (m *MongoDB) Database() (*mongo.Database, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.db == nil {
		return nil, ErrNotInitialized
	}
	return m.db, nil
}

func (m *MongoDB) Ping(ctx context.Context) error {
	m.mu.RLock()
	client := m.client
	m.mu.RUnlock()

	if client == nil {
		return ErrNotInitialized
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client. Calling it again is a no-op.
func (m *MongoDB) Close(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client, m.db = nil, nil
	m.mu.Unlock()

	if client == nil {
		return nil
	}

	log.Info().Msg("[DATABASE] Closing MongoDB client...")
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}
	return nil
}

func mongoDatabaseName(cfg *DBConfig) (string, error) {
	if cfg.Name != "" {
		return cfg.Name, nil
	}

	cs, err := connstring.ParseAndValidate(cfg.URL)
	if err != nil {
		return "", fmt.Errorf("invalid MongoDB connection string: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return defaultMongoDatabase, nil
}
