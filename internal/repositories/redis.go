package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// DefaultRedisKey is the key the whole snapshot lives under.
const DefaultRedisKey = "prepaid-cards"

// RedisClient is the part of *redis.Client the repository uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CardRedisRepository keeps the card set as one JSON document under a single key.
type CardRedisRepository struct {
	client RedisClient
	key    string
}

// NewCardRedisRepository creates a repository storing the snapshot under key.
func NewCardRedisRepository(client RedisClient, key string) *CardRedisRepository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &CardRedisRepository{client: client, key: key}
}

// Load reads the snapshot. A missing key is an empty card set.
func (r *CardRedisRepository) Load(ctx context.Context) ([]models.Card, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		logger.Log.Infow("redis get",
			"key", r.key,
			"result", len(val),
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return []models.Card{}, nil
		}
		return nil, err
	}

	var cards []models.Card
	if err := json.Unmarshal(val, &cards); err != nil {
		logger.Log.Infow("redis get",
			"key", r.key,
			"result", 0,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", r.key, err)
	}

	logger.Log.Infow("redis get",
		"key", r.key,
		"result", len(cards),
		"error", nil,
	)
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}

// Save overwrites the snapshot. SET replaces the value atomically.
func (r *CardRedisRepository) Save(ctx context.Context, cards []models.Card) error {
	if cards == nil {
		cards = []models.Card{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	err = r.client.Set(ctx, r.key, data, 0).Err()

	logger.Log.Infow("redis set",
		"key", r.key,
		"args", len(cards),
		"error", err,
	)

	return err
}
