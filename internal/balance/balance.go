// Package balance derives balances, usage and recency from a card snapshot.
// Every function is pure: it reads the card it is given and nothing else.
package balance

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

var hundred = decimal.NewFromInt(100)

// NeverUsed is the recency label for a card without transactions.
const NeverUsed = "Never used"

// Spent returns the sum of all transaction amounts.
func Spent(card models.Card) decimal.Decimal {
	total := decimal.Zero
	for _, t := range card.Transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// Balance returns the initial value minus everything spent.
func Balance(card models.Card) decimal.Decimal {
	return card.InitialValue.Sub(Spent(card))
}

// UsagePercentage returns the share of the initial value spent, in [0, 100].
func UsagePercentage(card models.Card) decimal.Decimal {
	if !card.InitialValue.IsPositive() {
		return decimal.Zero
	}
	pct := Spent(card).Div(card.InitialValue).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.IsNegative() {
		return decimal.Zero
	}
	return pct
}

// BalanceAfter returns the balance right after the given transaction was applied,
// replaying the canonical order up to and including it. ok is false when the
// transaction does not belong to the card.
func BalanceAfter(card models.Card, transactionID string) (decimal.Decimal, bool) {
	running := card.InitialValue
	for _, t := range card.Transactions {
		running = running.Sub(t.Amount)
		if t.ID == transactionID {
			return running, true
		}
	}
	return decimal.Zero, false
}

// Chronological returns the transactions oldest first. The card stores them in
// this order already; the result is a copy.
func Chronological(card models.Card) []models.Transaction {
	out := make([]models.Transaction, len(card.Transactions))
	copy(out, card.Transactions)
	return out
}

// RecentFirst returns the transactions newest first for display.
func RecentFirst(card models.Card) []models.Transaction {
	n := len(card.Transactions)
	out := make([]models.Transaction, n)
	for i, t := range card.Transactions {
		out[n-1-i] = t
	}
	return out
}

// LastUsedLabel humanizes how long ago the newest transaction happened.
func LastUsedLabel(card models.Card, now time.Time) string {
	if len(card.Transactions) == 0 {
		return NeverUsed
	}
	last := card.Transactions[len(card.Transactions)-1].Date

	diff := now.Sub(last)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))

	switch {
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", ceilDiv(days, 7))
	case days < 365:
		return fmt.Sprintf("%d months ago", ceilDiv(days, 30))
	default:
		return fmt.Sprintf("%d years ago", ceilDiv(days, 365))
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
