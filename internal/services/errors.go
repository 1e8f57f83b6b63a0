package services

import "errors"

var (
	// ErrValidation is returned for bad input: blank names, non-positive amounts, malformed imports.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when a card or transaction id is unknown.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientBalance is returned when a spend exceeds the card's current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrPersistence wraps failures of the storage backend.
	ErrPersistence = errors.New("persistence error")
)
