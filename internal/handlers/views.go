package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-card-ledger/internal/balance"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// timeNow is the reference time for lastUsed labels.
var timeNow = time.Now

// TransactionView is a transaction as shown under its card.
// swagger:model TransactionView
type TransactionView struct {
	ID           string          `json:"id"`
	CardID       string          `json:"cardId"`
	Description  string          `json:"description"`
	Location     string          `json:"location,omitempty"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"number" example:"4.5"`
	Date         time.Time       `json:"date"`
	BalanceAfter decimal.Decimal `json:"balanceAfter" swaggertype:"number" example:"45.5"` // Card balance right after this spend
}

// CardView is a card with its derived balance figures.
// swagger:model CardView
type CardView struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Number          string            `json:"number,omitempty"`
	PIN             string            `json:"pin,omitempty"`
	InitialValue    decimal.Decimal   `json:"initialValue" swaggertype:"number" example:"50"`
	CreatedAt       time.Time         `json:"createdAt"`
	IsArchived      bool              `json:"isArchived"`
	Balance         decimal.Decimal   `json:"balance" swaggertype:"number" example:"45.5"`
	UsagePercentage decimal.Decimal   `json:"usagePercentage" swaggertype:"number" example:"9"`
	LastUsed        string            `json:"lastUsed" example:"2 days ago"`
	Transactions    []TransactionView `json:"transactions"` // Newest first
}

// NewCardView builds the display form of a card.
func NewCardView(card models.Card) CardView {
	recent := balance.RecentFirst(card)
	txs := make([]TransactionView, 0, len(recent))
	for _, t := range recent {
		after, _ := balance.BalanceAfter(card, t.ID)
		txs = append(txs, TransactionView{
			ID:           t.ID,
			CardID:       t.CardID,
			Description:  t.Description,
			Location:     t.Location,
			Amount:       t.Amount,
			Date:         t.Date,
			BalanceAfter: after,
		})
	}

	return CardView{
		ID:              card.ID,
		Name:            card.Name,
		Number:          card.Number,
		PIN:             card.PIN,
		InitialValue:    card.InitialValue,
		CreatedAt:       card.CreatedAt,
		IsArchived:      card.IsArchived,
		Balance:         balance.Balance(card),
		UsagePercentage: balance.UsagePercentage(card).Round(2),
		LastUsed:        balance.LastUsedLabel(card, timeNow()),
		Transactions:    txs,
	}
}

func newCardViews(cards []models.Card) []CardView {
	out := make([]CardView, 0, len(cards))
	for _, c := range cards {
		out = append(out, NewCardView(c))
	}
	return out
}
