package repositories

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-card-ledger/internal/config"
	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// CardStore loads and saves the complete card set.
type CardStore interface {
	Load(ctx context.Context) ([]models.Card, error)
	Save(ctx context.Context, cards []models.Card) error
}

// Open builds the storage backend selected by cfg.Store.Driver. The returned
// close function releases the backend's connections and is never nil.
func Open(ctx context.Context, cfg *config.Config) (CardStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case config.DriverMemory:
		logger.Log.Warn("Using in-memory storage, cards are lost on restart")
		return NewCardMemoryRepository(), noop, nil

	case config.DriverBolt:
		repo, err := NewCardBoltRepository(cfg.Store.BoltPath)
		if err != nil {
			return nil, noop, err
		}
		logger.Log.Infof("Using bolt storage at %s", cfg.Store.BoltPath)
		return repo, repo.Close, nil

	case config.DriverPostgres:
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

		repo := NewCardPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("PostgreSQL migration error: %w", err)
		}
		return repo, db.Close, nil

	case config.DriverRedis:
		logger.Log.Infof("Connecting to Redis at %s", cfg.Redis.Addr())
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, noop, fmt.Errorf("Redis connection error: %w", err)
		}
		return NewCardRedisRepository(rdb, cfg.Redis.Key), rdb.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported storage driver %q", cfg.Store.Driver)
	}
}
