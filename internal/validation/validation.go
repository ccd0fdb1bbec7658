package validation

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID   = fmt.Errorf("invalid UUID format")
	ErrInvalidSymbol = fmt.Errorf("invalid ticker symbol")
	ErrEmptySlice    = fmt.Errorf("slice cannot be empty")
)

// Ticker symbols: uppercase letters and digits with optional exchange
// suffixes and index prefixes, e.g. AAPL, SHEL.L, BRK-B, ^GSPC.
var symbolPattern = regexp.MustCompile(`^\^?[A-Z0-9]{1,10}([.-][A-Z0-9]{1,4})?$`)

// ValidateAlertID checks if a string is a valid alert UUID
func ValidateAlertID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateSymbol checks if a string looks like a ticker symbol
func ValidateSymbol(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("%w: %s", ErrInvalidSymbol, symbol)
	}
	return nil
}

// ValidateSymbols validates a slice of ticker symbols
func ValidateSymbols(symbols []string) error {
	if len(symbols) == 0 {
		return ErrEmptySlice
	}
	for _, symbol := range symbols {
		if err := ValidateSymbol(symbol); err != nil {
			return err
		}
	}
	return nil
}
