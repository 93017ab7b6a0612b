package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	infraCache "library-api/internal/infrastructure/cache"
	"library-api/internal/infrastructure/database"
	"library-api/internal/storage"
	"library-api/internal/storage/cachestore"
	"library-api/internal/storage/memstore"
	"library-api/internal/storage/mongostore"
	"library-api/internal/storage/pgstore"
	"library-api/pkg/cache"

	"library-api/internal/domains/author"
	authorHandler "library-api/internal/domains/author/handler"
	authorService "library-api/internal/domains/author/service"

	"library-api/internal/domains/book"
	bookHandler "library-api/internal/domains/book/handler"
	bookService "library-api/internal/domains/book/service"

	"library-api/internal/domains/user"
	userHandler "library-api/internal/domains/user/handler"
	userService "library-api/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Collections groups the storage handles of every domain.
type Collections struct {
	Authors storage.Collection[author.Author]
	Books   storage.Collection[book.Book]
	Users   storage.Collection[user.User]
}

// Container holds every dependency of the application.
// Infrastructure is created once and shared by all requests.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     database.Connection
	Cache  cache.Cache // nil when REDIS_ADDR is unset or unreachable
	redis  *infraCache.RedisClient

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	Collections

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService author.Service
	BookService   book.Service
	UserService   user.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	UserHandler   *userHandler.UserHandler
}

// specs lists every collection the application owns.
var specs = []storage.CollectionSpec{author.Collection, book.Collection, user.Collection}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// config → database → cache → collections → services → handlers.
// Any error before the collections exist is fatal for the caller.
func NewContainer(ctx context.Context) (*Container, error) {
	log.Info().Msg("Initializing DI container...")

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// ========================================
	// STEP 2: CONNECT DATABASE
	// ========================================
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c := &Container{Config: cfg, DB: db}

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	// Redis failure is not critical: the service runs uncached.
	if cfg.Redis.Enabled() {
		rc := infraCache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis connection failed, continuing without cache")
			_ = rc.Close()
		} else {
			c.redis = rc
			c.Cache = infraCache.NewRedisCache(rc)
		}
	}

	// ========================================
	// STEP 4: OPEN COLLECTIONS
	// ========================================
	colls, err := openCollections(ctx, db)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to open collections: %w", err)
	}
	if c.Cache != nil {
		colls = colls.cached(c.Cache, cfg.Redis.TTL)
	}

	// ========================================
	// STEP 5-6: SERVICES AND HANDLERS
	// ========================================
	c.wire(colls)

	log.Info().Str("driver", string(db.Driver())).Bool("cache", c.Cache != nil).
		Msg("DI container initialized successfully")
	return c, nil
}

// Build assembles a container around existing collections. It is used by
// tests and by tools that bring their own storage.
func Build(cfg *config.Config, db database.Connection, colls Collections) *Container {
	c := &Container{Config: cfg, DB: db}
	c.wire(colls)
	return c
}

func (c *Container) wire(colls Collections) {
	c.Collections = colls

	c.AuthorService = authorService.NewAuthorService(colls.Authors)
	c.BookService = bookService.NewBookService(colls.Books)
	c.UserService = userService.NewUserService(colls.Users)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// openCollections binds every collection to the connected backend and makes
// sure its unique constraints exist.
func openCollections(ctx context.Context, db database.Connection) (Collections, error) {
	switch conn := db.(type) {
	case *database.MongoDB:
		mdb, err := conn.Database()
		if err != nil {
			return Collections{}, err
		}
		if err := mongostore.EnsureIndexes(ctx, mdb, specs...); err != nil {
			return Collections{}, err
		}
		return Collections{
			Authors: mongostore.NewCollection[author.Author](mdb.Collection(author.Collection.Name)),
			Books:   mongostore.NewCollection[book.Book](mdb.Collection(book.Collection.Name)),
			Users:   mongostore.NewCollection[user.User](mdb.Collection(user.Collection.Name)),
		}, nil

	case *database.PostgresDB:
		pool, err := conn.Acquire()
		if err != nil {
			return Collections{}, err
		}
		if err := pgstore.EnsureSchema(ctx, pool, specs...); err != nil {
			return Collections{}, err
		}
		return Collections{
			Authors: pgstore.NewCollection[author.Author](pool, author.Collection),
			Books:   pgstore.NewCollection[book.Book](pool, book.Collection),
			Users:   pgstore.NewCollection[user.User](pool, user.Collection),
		}, nil

	case *database.MemoryDB:
		return NewMemoryCollections(), nil

	default:
		return Collections{}, fmt.Errorf("no collections for driver %q", db.Driver())
	}
}

// NewMemoryCollections returns empty in-memory collections with the same
// unique constraints as the real backends.
func NewMemoryCollections() Collections {
	return Collections{
		Authors: memstore.NewCollection[author.Author](author.Collection),
		Books:   memstore.NewCollection[book.Book](book.Collection),
		Users:   memstore.NewCollection[user.User](user.Collection),
	}
}

// cached wraps the collections this service writes. Users are written
// elsewhere, so nothing here could evict them and they stay uncached.
func (cs Collections) cached(c cache.Cache, ttl time.Duration) Collections {
	return Collections{
		Authors: cachestore.Wrap(cs.Authors, c, ttl),
		Books:   cachestore.Wrap(cs.Books, c, ttl),
		Users:   cs.Users,
	}
}

// Cleanup releases the connections. Safe to call more than once.
func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
		c.redis = nil
	}
	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close database connection")
		}
	}
}
