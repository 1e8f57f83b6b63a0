package models

import "github.com/shopspring/decimal"

// NewCard holds the fields supplied when a card is registered.
type NewCard struct {
	Name         string
	Number       string
	PIN          string
	InitialValue decimal.Decimal
}

// CardChanges is a partial card update; nil fields are left untouched.
type CardChanges struct {
	Name         *string
	Number       *string
	PIN          *string
	InitialValue *decimal.Decimal
}

// NewTransaction holds the fields supplied when a spend is recorded.
type NewTransaction struct {
	Description string
	Location    string
	Amount      decimal.Decimal
}

// TransactionChanges is a partial transaction update; nil fields are left untouched.
type TransactionChanges struct {
	Description *string
	Amount      *decimal.Decimal
}
