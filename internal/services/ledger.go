package services

//go:generate mockgen -source=ledger.go -destination=mock_ledger_test.go -package=services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// SnapshotStorage persists the whole card set.
type SnapshotStorage interface {
	Load(ctx context.Context) ([]models.Card, error)      // Returns every card in insertion order
	Save(ctx context.Context, cards []models.Card) error // Replaces the stored set atomically
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Ledger owns every card and its transactions. Each operation loads the
// snapshot, applies the change to a copy and saves the full set under one
// lock, so concurrent callers never interleave partial writes.
type Ledger struct {
	mu          sync.Mutex
	storage     SnapshotStorage
	kafkaWriter KafkaWriter
	now         func() time.Time
	newID       func() string
	autoArchive bool
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithKafkaWriter publishes a LedgerEvent after every successful mutation.
func WithKafkaWriter(w KafkaWriter) LedgerOption {
	return func(l *Ledger) { l.kafkaWriter = w }
}

// WithClock overrides the time source used for createdAt and transaction dates.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator overrides how card and transaction ids are generated.
func WithIDGenerator(newID func() string) LedgerOption {
	return func(l *Ledger) { l.newID = newID }
}

// WithAutoArchive archives a card in the same write that brings its balance to zero.
func WithAutoArchive(enabled bool) LedgerOption {
	return func(l *Ledger) { l.autoArchive = enabled }
}

// NewLedger creates a Ledger on top of the given storage backend.
func NewLedger(storage SnapshotStorage, opts ...LedgerOption) *Ledger {
	l := &Ledger{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// load reads the snapshot and fills in legacy defaults. Callers hold l.mu.
func (l *Ledger) load(ctx context.Context) ([]models.Card, error) {
	cards, err := l.storage.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load cards", "error", err)
		return nil, fmt.Errorf("%w: load: %w", ErrPersistence, err)
	}
	for i := range cards {
		cards[i].Normalize()
	}
	return cards, nil
}

// read returns a private copy of the current snapshot.
func (l *Ledger) read(ctx context.Context) ([]models.Card, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// mutate runs fn against a copy of the snapshot and persists the result.
// Nothing is saved when fn fails, and a failed save leaves the stored set as it was.
func (l *Ledger) mutate(ctx context.Context, fn func(cards []models.Card) ([]models.Card, error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cards, err := l.load(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(models.CloneCards(cards))
	if err != nil {
		return err
	}

	if err := l.storage.Save(ctx, updated); err != nil {
		logger.Log.Errorw("failed to save cards", "cards", len(updated), "error", err)
		return fmt.Errorf("%w: save: %w", ErrPersistence, err)
	}
	return nil
}

func findCard(cards []models.Card, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func cardNotFound(id string) error {
	return fmt.Errorf("%w: card %q", ErrNotFound, id)
}

func transactionNotFound(id string) error {
	return fmt.Errorf("%w: transaction %q", ErrNotFound, id)
}
