package repositories

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// BucketCards holds one JSON card per key; keys are big-endian insertion positions.
const BucketCards = "cards"

// CardBoltRepository stores the card set in a bbolt file.
type CardBoltRepository struct {
	db *bolt.DB
}

// NewCardBoltRepository opens (or creates) the database file and its bucket.
func NewCardBoltRepository(path string) (*CardBoltRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(BucketCards)); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", BucketCards, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &CardBoltRepository{db: db}, nil
}

// Close closes the database.
func (r *CardBoltRepository) Close() error {
	return r.db.Close()
}

// Load reads every card in key order, which is insertion order.
func (r *CardBoltRepository) Load(ctx context.Context) ([]models.Card, error) {
	cards := []models.Card{}

	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketCards))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketCards)
		}
		return b.ForEach(func(k, v []byte) error {
			var card models.Card
			if err := json.Unmarshal(v, &card); err != nil {
				return fmt.Errorf("failed to unmarshal card at key %d: %w", btoi(k), err)
			}
			cards = append(cards, card)
			return nil
		})
	})

	logger.Log.Infow("bolt load",
		"bucket", BucketCards,
		"result", len(cards),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return cards, nil
}

// Save replaces the bucket contents in a single write transaction, so a
// failure leaves the previous snapshot untouched.
func (r *CardBoltRepository) Save(ctx context.Context, cards []models.Card) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(BucketCards)); err != nil && err != bolt.ErrBucketNotFound {
			return fmt.Errorf("failed to reset bucket %s: %w", BucketCards, err)
		}
		b, err := tx.CreateBucket([]byte(BucketCards))
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", BucketCards, err)
		}

		for i, card := range cards {
			data, err := json.Marshal(card)
			if err != nil {
				return fmt.Errorf("failed to marshal card %s: %w", card.ID, err)
			}
			if err := b.Put(itob(int64(i)), data); err != nil {
				return err
			}
		}
		return nil
	})

	logger.Log.Infow("bolt save",
		"bucket", BucketCards,
		"args", len(cards),
		"error", err,
	)

	return err
}

// itob returns an 8-byte big endian representation of v.
func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func btoi(b []byte) int64 {
	if len(b) != 8 {
		return -1
	}
	return int64(binary.BigEndian.Uint64(b))
}
