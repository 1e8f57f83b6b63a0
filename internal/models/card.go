package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Exported payloads carry amounts as JSON numbers, like the files the web client writes.
	decimal.MarshalJSONWithoutQuotes = true
}

// Card represents a tracked prepaid or gift card together with its spending history.
type Card struct {
	ID           string          `json:"id"`                                // Unique card identifier, assigned at creation
	Name         string          `json:"name"`                              // Display name, never blank
	Number       string          `json:"number,omitempty"`                  // Optional card number, reference only
	PIN          string          `json:"pin,omitempty"`                     // Optional PIN
	InitialValue decimal.Decimal `json:"initialValue" swaggertype:"number"` // Value loaded on the card
	CreatedAt    time.Time       `json:"createdAt"`                         // Creation timestamp
	IsArchived   bool            `json:"isArchived"`                        // Hidden from the active list when true
	Transactions []Transaction   `json:"transactions"`                      // Spending history in insertion order, oldest first
}

// Clone returns a deep copy of the card so callers never share the transaction slice.
func (c Card) Clone() Card {
	out := c
	out.Transactions = make([]Transaction, len(c.Transactions))
	copy(out.Transactions, c.Transactions)
	return out
}

// TransactionIndex returns the position of the transaction in the canonical order or -1.
func (c Card) TransactionIndex(transactionID string) int {
	for i, t := range c.Transactions {
		if t.ID == transactionID {
			return i
		}
	}
	return -1
}

// Normalize fills in what older snapshots may omit: a non-nil transaction
// slice and every transaction pointing back at its owner. The stored order
// is kept as is.
func (c *Card) Normalize() {
	if c.Transactions == nil {
		c.Transactions = []Transaction{}
	}
	for i := range c.Transactions {
		if c.Transactions[i].CardID == "" {
			c.Transactions[i].CardID = c.ID
		}
	}
}

// SortTransactions orders transactions oldest first. Equal dates keep their
// relative order. Only documents coming from outside the ledger need this.
func (c *Card) SortTransactions() {
	sort.SliceStable(c.Transactions, func(i, j int) bool {
		return c.Transactions[i].Date.Before(c.Transactions[j].Date)
	})
}

// CloneCards deep-copies a card set.
func CloneCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}

// CardFilter selects which cards a listing returns.
type CardFilter int

const (
	FilterActive   CardFilter = iota // Cards that are not archived
	FilterAll                        // Every card
	FilterArchived                   // Archived cards only
)

// Match reports whether the card passes the filter.
func (f CardFilter) Match(c Card) bool {
	switch f {
	case FilterAll:
		return true
	case FilterArchived:
		return c.IsArchived
	default:
		return !c.IsArchived
	}
}

// ParseCardFilter maps the status query value used by the API and CLI.
func ParseCardFilter(status string) (CardFilter, bool) {
	switch status {
	case "", "active":
		return FilterActive, true
	case "all":
		return FilterAll, true
	case "archived":
		return FilterArchived, true
	default:
		return FilterActive, false
	}
}
