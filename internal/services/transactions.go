package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-card-ledger/internal/balance"
	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// AddTransaction records a spend at the end of the card's history.
// The amount may not exceed the card's balance at the time of the call.
func (l *Ledger) AddTransaction(ctx context.Context, cardID string, in models.NewTransaction) (models.Transaction, error) {
	if err := validateRequired("description", in.Description); err != nil {
		return models.Transaction{}, err
	}
	if err := validatePositive("amount", in.Amount); err != nil {
		return models.Transaction{}, err
	}

	var (
		txn          models.Transaction
		balanceAfter decimal.Decimal
		archived     bool
	)
	err := l.mutate(ctx, func(cards []models.Card) ([]models.Card, error) {
		i := findCard(cards, cardID)
		if i < 0 {
			return nil, cardNotFound(cardID)
		}
		card := &cards[i]

		current := balance.Balance(*card)
		if in.Amount.GreaterThan(current) {
			return nil, fmt.Errorf("%w: amount %s exceeds balance %s", ErrInsufficientBalance, in.Amount.StringFixed(2), current.StringFixed(2))
		}

		txn = models.Transaction{
			ID:          l.newID(),
			CardID:      card.ID,
			Description: in.Description,
			Location:    in.Location,
			Amount:      in.Amount,
			Date:        l.now(),
		}
		card.Transactions = append(card.Transactions, txn)
		balanceAfter = current.Sub(in.Amount)

		if l.autoArchive && balanceAfter.IsZero() && !card.IsArchived {
			card.IsArchived = true
			archived = true
		}
		return cards, nil
	})
	if err != nil {
		return models.Transaction{}, err
	}

	logger.Log.Infow("transaction added", "card_id", cardID, "transaction_id", txn.ID, "amount", txn.Amount, "balance", balanceAfter)
	l.publishEvent(ctx, models.LedgerEvent{
		Type:          models.EventTransactionAdded,
		CardID:        cardID,
		TransactionID: txn.ID,
		Amount:        &txn.Amount,
		Balance:       &balanceAfter,
	})
	if archived {
		l.publishEvent(ctx, models.LedgerEvent{Type: models.EventCardArchived, CardID: cardID})
	}
	return txn, nil
}

// UpdateTransaction changes a transaction's description and/or amount. The
// date and owner never change. The new amount is not checked against the
// balance, so an edit may leave the card with a negative balance.
func (l *Ledger) UpdateTransaction(ctx context.Context, cardID, transactionID string, changes models.TransactionChanges) (models.Transaction, error) {
	if changes.Description != nil {
		if err := validateRequired("description", *changes.Description); err != nil {
			return models.Transaction{}, err
		}
	}
	if changes.Amount != nil {
		if err := validatePositive("amount", *changes.Amount); err != nil {
			return models.Transaction{}, err
		}
	}

	var (
		txn models.Transaction
		bal decimal.Decimal
	)
	err := l.mutate(ctx, func(cards []models.Card) ([]models.Card, error) {
		i := findCard(cards, cardID)
		if i < 0 {
			return nil, cardNotFound(cardID)
		}
		card := &cards[i]
		j := card.TransactionIndex(transactionID)
		if j < 0 {
			return nil, transactionNotFound(transactionID)
		}

		t := &card.Transactions[j]
		if changes.Description != nil {
			t.Description = *changes.Description
		}
		if changes.Amount != nil {
			t.Amount = *changes.Amount
		}
		txn = *t
		bal = balance.Balance(*card)
		return cards, nil
	})
	if err != nil {
		return models.Transaction{}, err
	}

	if bal.IsNegative() {
		logger.Log.Warnw("transaction edit left card with negative balance", "card_id", cardID, "transaction_id", transactionID, "balance", bal)
	}
	l.publishEvent(ctx, models.LedgerEvent{
		Type:          models.EventTransactionUpdated,
		CardID:        cardID,
		TransactionID: transactionID,
		Amount:        &txn.Amount,
		Balance:       &bal,
	})
	return txn, nil
}

// DeleteTransaction removes a transaction. Removing a spend only raises the
// balance, so there is no balance check.
func (l *Ledger) DeleteTransaction(ctx context.Context, cardID, transactionID string) error {
	var bal decimal.Decimal
	err := l.mutate(ctx, func(cards []models.Card) ([]models.Card, error) {
		i := findCard(cards, cardID)
		if i < 0 {
			return nil, cardNotFound(cardID)
		}
		card := &cards[i]
		j := card.TransactionIndex(transactionID)
		if j < 0 {
			return nil, transactionNotFound(transactionID)
		}
		card.Transactions = append(card.Transactions[:j], card.Transactions[j+1:]...)
		bal = balance.Balance(*card)
		return cards, nil
	})
	if err != nil {
		return err
	}

	l.publishEvent(ctx, models.LedgerEvent{
		Type:          models.EventTransactionDeleted,
		CardID:        cardID,
		TransactionID: transactionID,
		Balance:       &bal,
	})
	return nil
}

// FindTransaction looks a transaction up by id across every card.
func (l *Ledger) FindTransaction(ctx context.Context, transactionID string) (models.Transaction, error) {
	cards, err := l.read(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	for _, c := range cards {
		if j := c.TransactionIndex(transactionID); j >= 0 {
			return c.Transactions[j], nil
		}
	}
	return models.Transaction{}, transactionNotFound(transactionID)
}
