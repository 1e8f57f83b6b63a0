package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single spend against a card.
type Transaction struct {
	ID          string          `json:"id"`                          // Unique transaction identifier
	CardID      string          `json:"cardId"`                      // Owning card
	Description string          `json:"description"`                 // What the money was spent on
	Location    string          `json:"location,omitempty"`          // Optional place of purchase
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"` // Amount spent, always positive
	Date        time.Time       `json:"date"`                        // When the spend was recorded
}
