package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
)

// MakeID generates a unique identifier for test entities.
func MakeID() string {
	return uuid.New().String()
}

// AlertBuilder provides a fluent interface for creating test alerts.
//
// Example usage:
//
//	// Simple creation with defaults
//	alert := testutil.NewAlert().Build(t, db)
//
//	// Customized alert
//	alert := testutil.NewAlert().
//	    WithSymbol("NVDA").
//	    WithType(model.AlertPriceBelow).
//	    WithCondition(800).
//	    Triggered().
//	    Build(t, db)
type AlertBuilder struct {
	alert model.Alert
}

// NewAlert creates an AlertBuilder with sensible defaults.
func NewAlert() *AlertBuilder {
	return &AlertBuilder{
		alert: model.Alert{
			ID:        MakeID(),
			Symbol:    "AAPL",
			Type:      model.AlertPriceAbove,
			Condition: 200,
			Message:   "AAPL crossed 200",
			CreatedAt: time.Now().UTC(),
		},
	}
}

// WithSymbol sets a custom symbol.
func (b *AlertBuilder) WithSymbol(symbol string) *AlertBuilder {
	b.alert.Symbol = symbol
	return b
}

// WithType sets the alert type.
func (b *AlertBuilder) WithType(alertType model.AlertType) *AlertBuilder {
	b.alert.Type = alertType
	return b
}

// WithCondition sets the trigger threshold.
func (b *AlertBuilder) WithCondition(condition float64) *AlertBuilder {
	b.alert.Condition = condition
	return b
}

// WithMessage sets the alert message.
func (b *AlertBuilder) WithMessage(message string) *AlertBuilder {
	b.alert.Message = message
	return b
}

// Triggered marks the alert as already fired.
func (b *AlertBuilder) Triggered() *AlertBuilder {
	b.alert.Triggered = true
	return b
}

// Build persists the alert and returns it.
func (b *AlertBuilder) Build(t *testing.T, db *sql.DB) model.Alert {
	t.Helper()

	if err := repository.NewWatchlistRepository(db).CreateAlert(b.alert); err != nil {
		t.Fatalf("Failed to create test alert: %v", err)
	}
	return b.alert
}

// AddWatchlistItem persists a watchlist entry and returns it.
func AddWatchlistItem(t *testing.T, db *sql.DB, list, symbol string) model.WatchlistItem {
	t.Helper()

	item := model.WatchlistItem{
		List:    list,
		Symbol:  symbol,
		AddedAt: time.Now().UTC(),
	}
	if err := repository.NewWatchlistRepository(db).AddItem(item); err != nil {
		t.Fatalf("Failed to add test watchlist item: %v", err)
	}
	return item
}

// TestQuote returns a valid USD quote for the symbol.
func TestQuote(symbol string, price float64) model.Quote {
	return model.Quote{
		Symbol:        symbol,
		Name:          symbol + " Inc.",
		Price:         price,
		PreviousClose: price * 0.99,
		Change:        price * 0.01,
		ChangePercent: 1.0101,
		Currency:      model.USD,
		Exchange:      "NASDAQ",
		MarketState:   "REGULAR",
	}
}

// TestFxRates returns fixed EUR rates so valuation arithmetic stays exact
// in tests.
func TestFxRates() model.FxRates {
	return model.FxRates{
		Base:      model.EUR,
		Rates:     model.Rates{USD: 1.08, GBP: 0.87},
		FetchedAt: time.Now().UTC(),
	}
}
