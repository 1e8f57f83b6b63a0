package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// CardMemoryRepository keeps the card set in process memory. Data is lost on restart.
type CardMemoryRepository struct {
	mu    sync.RWMutex
	cards []models.Card
}

// NewCardMemoryRepository creates an empty in-memory repository seeded with the given cards.
func NewCardMemoryRepository(seed ...models.Card) *CardMemoryRepository {
	return &CardMemoryRepository{cards: models.CloneCards(seed)}
}

// Load returns a copy of the stored cards.
func (r *CardMemoryRepository) Load(ctx context.Context) ([]models.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := models.CloneCards(r.cards)
	logger.Log.Debugw("memory load", "result", len(cards))
	return cards, nil
}

// Save replaces the stored cards with a copy of the given set.
func (r *CardMemoryRepository) Save(ctx context.Context, cards []models.Card) error {
	snapshot := models.CloneCards(cards)

	r.mu.Lock()
	r.cards = snapshot
	r.mu.Unlock()

	logger.Log.Debugw("memory save", "args", len(cards))
	return nil
}
