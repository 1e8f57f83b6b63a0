package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// validateRequired rejects blank text fields.
func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

// validatePositive rejects zero and negative amounts.
func validatePositive(field string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than 0", ErrValidation, field)
	}
	return nil
}
