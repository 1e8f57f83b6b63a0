package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sbilibin2017/gw-card-ledger/internal/balance"
	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// Export returns every card, or only the cards with the given ids, in the
// download document shape.
func (l *Ledger) Export(ctx context.Context, ids ...string) (models.CardsPayload, error) {
	cards, err := l.read(ctx)
	if err != nil {
		return models.CardsPayload{}, err
	}
	if len(ids) == 0 {
		return models.CardsPayload{Cards: cards}, nil
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		if findCard(cards, id) < 0 {
			return models.CardsPayload{}, cardNotFound(id)
		}
		selected[id] = true
	}
	out := make([]models.Card, 0, len(ids))
	for _, c := range cards {
		if selected[c.ID] {
			out = append(out, c)
		}
	}
	return models.CardsPayload{Cards: out}, nil
}

// Import merges an uploaded document into the ledger and returns the number
// of cards imported. data is either {"cards": [...]} or a bare JSON array.
// The whole import is applied in one write or not at all.
func (l *Ledger) Import(ctx context.Context, data []byte, mode models.ImportMode) (int, error) {
	if !mode.Valid() {
		return 0, fmt.Errorf("%w: invalid import mode %q", ErrValidation, mode)
	}
	incoming, err := decodeCards(data)
	if err != nil {
		return 0, err
	}

	var imported []models.Card
	err = l.mutate(ctx, func(cards []models.Card) ([]models.Card, error) {
		switch mode {
		case models.ImportReplace:
			if err := validateSnapshot(incoming); err != nil {
				return nil, err
			}
			imported = incoming
			return models.CloneCards(incoming), nil
		default:
			added, err := l.recreate(incoming)
			if err != nil {
				return nil, err
			}
			imported = added
			return append(cards, added...), nil
		}
	})
	if err != nil {
		return 0, err
	}

	logger.Log.Infow("cards imported", "mode", mode, "count", len(imported))
	l.publishEvent(ctx, models.LedgerEvent{Type: models.EventCardsImported, Count: len(imported)})
	return len(imported), nil
}

// decodeCards parses an upload, checks that every card carries the fields
// an export always writes and puts each history into chronological order.
func decodeCards(data []byte) ([]models.Card, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrValidation)
	}

	raw := json.RawMessage(data)
	if data[0] != '[' {
		var payload struct {
			Cards *json.RawMessage `json:"cards"`
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("%w: invalid data format: %v", ErrValidation, err)
		}
		if payload.Cards == nil {
			return nil, fmt.Errorf("%w: invalid data format: cards array is required", ErrValidation)
		}
		raw = *payload.Cards
	}

	var cards []models.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("%w: invalid data format: %v", ErrValidation, err)
	}
	// isArchived has a usable zero value, so its presence is checked on the raw document.
	var flags []struct {
		IsArchived *bool `json:"isArchived"`
	}
	if err := json.Unmarshal(raw, &flags); err != nil {
		return nil, fmt.Errorf("%w: invalid data format: %v", ErrValidation, err)
	}

	for i := range cards {
		if flags[i].IsArchived == nil {
			return nil, fmt.Errorf("%w: cards[%d]: isArchived is required", ErrValidation, i)
		}
		if err := validateShape(i, cards[i]); err != nil {
			return nil, err
		}
		cards[i].Normalize()
		cards[i].SortTransactions()
	}
	return cards, nil
}

// validateShape rejects cards missing the ids and dates every export carries.
func validateShape(i int, c models.Card) error {
	if c.ID == "" {
		return fmt.Errorf("%w: cards[%d]: id is required", ErrValidation, i)
	}
	if c.CreatedAt.IsZero() {
		return fmt.Errorf("%w: cards[%d]: createdAt is required", ErrValidation, i)
	}
	for j, t := range c.Transactions {
		if t.ID == "" {
			return fmt.Errorf("%w: cards[%d].transactions[%d]: id is required", ErrValidation, i, j)
		}
		if t.Date.IsZero() {
			return fmt.Errorf("%w: cards[%d].transactions[%d]: date is required", ErrValidation, i, j)
		}
	}
	return nil
}

// validateSnapshot checks a card set that will be adopted verbatim.
func validateSnapshot(cards []models.Card) error {
	cardIDs := make(map[string]bool, len(cards))
	txIDs := make(map[string]bool)

	for i, c := range cards {
		if cardIDs[c.ID] {
			return fmt.Errorf("%w: cards[%d]: duplicate id %q", ErrValidation, i, c.ID)
		}
		cardIDs[c.ID] = true

		if err := validateRequired("name", c.Name); err != nil {
			return fmt.Errorf("cards[%d]: %w", i, err)
		}
		if err := validatePositive("initial value", c.InitialValue); err != nil {
			return fmt.Errorf("cards[%d]: %w", i, err)
		}

		for j, t := range c.Transactions {
			if txIDs[t.ID] {
				return fmt.Errorf("%w: cards[%d].transactions[%d]: duplicate id %q", ErrValidation, i, j, t.ID)
			}
			txIDs[t.ID] = true

			if t.CardID != c.ID {
				return fmt.Errorf("%w: cards[%d].transactions[%d]: cardId %q does not match card %q", ErrValidation, i, j, t.CardID, c.ID)
			}
			if err := validateRequired("description", t.Description); err != nil {
				return fmt.Errorf("cards[%d].transactions[%d]: %w", i, j, err)
			}
			if err := validatePositive("amount", t.Amount); err != nil {
				return fmt.Errorf("cards[%d].transactions[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

// recreate turns incoming cards into brand-new cards, replaying their
// transactions oldest first with the same checks AddTransaction applies.
// Descriptions, locations, amounts and dates are kept.
func (l *Ledger) recreate(incoming []models.Card) ([]models.Card, error) {
	out := make([]models.Card, 0, len(incoming))
	for i, src := range incoming {
		if err := validateRequired("name", src.Name); err != nil {
			return nil, fmt.Errorf("cards[%d]: %w", i, err)
		}
		if err := validatePositive("initial value", src.InitialValue); err != nil {
			return nil, fmt.Errorf("cards[%d]: %w", i, err)
		}

		card := models.Card{
			ID:           l.newID(),
			Name:         src.Name,
			Number:       src.Number,
			PIN:          src.PIN,
			InitialValue: src.InitialValue,
			CreatedAt:    l.now(),
			Transactions: make([]models.Transaction, 0, len(src.Transactions)),
		}

		for j, t := range balance.Chronological(src) {
			if err := validateRequired("description", t.Description); err != nil {
				return nil, fmt.Errorf("cards[%d].transactions[%d]: %w", i, j, err)
			}
			if err := validatePositive("amount", t.Amount); err != nil {
				return nil, fmt.Errorf("cards[%d].transactions[%d]: %w", i, j, err)
			}
			current := balance.Balance(card)
			if t.Amount.GreaterThan(current) {
				return nil, fmt.Errorf("%w: cards[%d].transactions[%d]: amount %s exceeds balance %s",
					ErrInsufficientBalance, i, j, t.Amount.StringFixed(2), current.StringFixed(2))
			}

			card.Transactions = append(card.Transactions, models.Transaction{
				ID:          l.newID(),
				CardID:      card.ID,
				Description: t.Description,
				Location:    t.Location,
				Amount:      t.Amount,
				Date:        t.Date,
			})
		}

		if l.autoArchive && len(card.Transactions) > 0 && balance.Balance(card).IsZero() {
			card.IsArchived = true
		}
		out = append(out, card)
	}
	return out, nil
}
