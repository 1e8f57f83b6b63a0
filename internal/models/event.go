package models

import "github.com/shopspring/decimal"

// Ledger event types published after a successful mutation.
const (
	EventCardCreated        = "card.created"
	EventCardUpdated        = "card.updated"
	EventCardArchived       = "card.archived"
	EventCardUnarchived     = "card.unarchived"
	EventCardDeleted        = "card.deleted"
	EventTransactionAdded   = "transaction.added"
	EventTransactionUpdated = "transaction.updated"
	EventTransactionDeleted = "transaction.deleted"
	EventCardsImported      = "cards.imported"
)

// LedgerEvent describes a change applied to the ledger.
type LedgerEvent struct {
	EventID       string           `json:"event_id"`                 // Unique event identifier
	Type          string           `json:"type"`                     // One of the Event* constants
	CardID        string           `json:"card_id,omitempty"`        // Affected card, if any
	TransactionID string           `json:"transaction_id,omitempty"` // Affected transaction, if any
	Amount        *decimal.Decimal `json:"amount,omitempty"`         // Transaction amount, if any
	Balance       *decimal.Decimal `json:"balance,omitempty"`        // Card balance after the change, if any
	Count         int              `json:"count,omitempty"`          // Number of cards for bulk events
	Timestamp     int64            `json:"timestamp"`                // Unix timestamp (seconds)
}
