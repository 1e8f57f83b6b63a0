package services

import (
	"context"

	"github.com/sbilibin2017/gw-card-ledger/internal/balance"
	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// CreateCard registers a new card with no transactions.
func (l *Ledger) CreateCard(ctx context.Context, in models.NewCard) (models.Card, error) {
	if err := validateRequired("name", in.Name); err != nil {
		return models.Card{}, err
	}
	if err := validatePositive("initial value", in.InitialValue); err != nil {
		return models.Card{}, err
	}

	card := models.Card{
		ID:           l.newID(),
		Name:         in.Name,
		Number:       in.Number,
		PIN:          in.PIN,
		InitialValue: in.InitialValue,
		CreatedAt:    l.now(),
		IsArchived:   false,
		Transactions: []models.Transaction{},
	}

	err := l.mutate(ctx, func(cards []models.Card) ([]models.Card, error) {
		return append(cards, card), nil
	})
	if err != nil {
		return models.Card{}, err
	}

	logger.Log.Infow("card created", "card_id", card.ID, "initial_value", card.InitialValue)
	l.publishEvent(ctx, models.LedgerEvent{Type: models.EventCardCreated, CardID: card.ID, Balance: &card.InitialValue})
	return card.Clone(), nil
}

// GetCard returns a card by id.
func (l *Ledger) GetCard(ctx context.Context, id string) (models.Card, error) {
	cards, err := l.read(ctx)
	if err != nil {
		return models.Card{}, err
	}
	i := findCard(cards, id)
	if i < 0 {
		return models.Card{}, cardNotFound(id)
	}
	return cards[i], nil
}

// ListCards returns the cards passing the filter in insertion order.
func (l *Ledger) ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	cards, err := l.read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// UpdateCard applies the supplied fields only.
func (l *Ledger) UpdateCard(ctx context.Context, id string, changes models.CardChanges) (models.Card, error) {
	if changes.Name != nil {
		if err := validateRequired("name", *changes.Name); err != nil {
			return models.Card{}, err
		}
	}
	if changes.InitialValue != nil {
		if err := validatePositive("initial value", *changes.InitialValue); err != nil {
			return models.Card{}, err
		}
	}

	var updated models.Card
	err := l.mutate(ctx, func(cards []models.Card) ([]models.Card, error) {
		i := findCard(cards, id)
		if i < 0 {
			return nil, cardNotFound(id)
		}
		c := &cards[i]
		if changes.Name != nil {
			c.Name = *changes.Name
		}
		if changes.Number != nil {
			c.Number = *changes.Number
		}
		if changes.PIN != nil {
			c.PIN = *changes.PIN
		}
		if changes.InitialValue != nil {
			c.InitialValue = *changes.InitialValue
		}
		updated = c.Clone()
		return cards, nil
	})
	if err != nil {
		return models.Card{}, err
	}

	bal := balance.Balance(updated)
	l.publishEvent(ctx, models.LedgerEvent{Type: models.EventCardUpdated, CardID: id, Balance: &bal})
	return updated, nil
}

// ArchiveCard hides a card from the active list. Archiving an archived card is a no-op.
func (l *Ledger) ArchiveCard(ctx context.Context, id string) (models.Card, error) {
	return l.setArchived(ctx, id, true)
}

// UnarchiveCard returns a card to the active list. Unarchiving an active card is a no-op.
func (l *Ledger) UnarchiveCard(ctx context.Context, id string) (models.Card, error) {
	return l.setArchived(ctx, id, false)
}

func (l *Ledger) setArchived(ctx context.Context, id string, archived bool) (models.Card, error) {
	var (
		updated models.Card
		changed bool
	)
	err := l.mutate(ctx, func(cards []models.Card) ([]models.Card, error) {
		i := findCard(cards, id)
		if i < 0 {
			return nil, cardNotFound(id)
		}
		changed = cards[i].IsArchived != archived
		cards[i].IsArchived = archived
		updated = cards[i].Clone()
		return cards, nil
	})
	if err != nil {
		return models.Card{}, err
	}

	if changed {
		evtType := models.EventCardUnarchived
		if archived {
			evtType = models.EventCardArchived
		}
		l.publishEvent(ctx, models.LedgerEvent{Type: evtType, CardID: id})
	}
	return updated, nil
}

// DeleteCard removes a card together with all of its transactions.
func (l *Ledger) DeleteCard(ctx context.Context, id string) error {
	var removed int
	err := l.mutate(ctx, func(cards []models.Card) ([]models.Card, error) {
		i := findCard(cards, id)
		if i < 0 {
			return nil, cardNotFound(id)
		}
		removed = len(cards[i].Transactions)
		return append(cards[:i], cards[i+1:]...), nil
	})
	if err != nil {
		return err
	}

	logger.Log.Infow("card deleted", "card_id", id, "transactions_removed", removed)
	l.publishEvent(ctx, models.LedgerEvent{Type: models.EventCardDeleted, CardID: id, Count: removed})
	return nil
}
