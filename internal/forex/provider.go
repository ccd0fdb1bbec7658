// Package forex fetches EUR-base exchange rates from a chain of providers,
// mirroring the quote chain: ordered fallback with an always-succeeding mock
// generator at the end.
package forex

import (
	"context"
	"log"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// Rates is the full rate set the dashboard consumes: USD and GBP for the
// valuation core, INR for the secondary display conversion.
type Rates struct {
	USD float64 `json:"USD"`
	GBP float64 `json:"GBP"`
	INR float64 `json:"INR"`
}

// Result is the outcome of a forex fetch.
type Result struct {
	Base      model.Currency `json:"base"`
	Rates     Rates          `json:"rates"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
}

// FxRates projects the result onto the valuation core's rate table.
func (r Result) FxRates() model.FxRates {
	return model.FxRates{
		Base:      r.Base,
		Rates:     model.Rates{USD: r.Rates.USD, GBP: r.Rates.GBP},
		FetchedAt: r.Timestamp,
	}
}

// Complete reports whether every rate is positive. Providers returning
// partial rate sets are treated as failed so the chain keeps trying.
func (r Rates) Complete() bool {
	return r.USD > 0 && r.GBP > 0 && r.INR > 0
}

// Provider is a single forex source.
type Provider interface {
	Name() string
	Rates(ctx context.Context, base model.Currency) (Rates, error)
}

// Chain tries forex providers in order, degrading to mock rates when every
// provider fails.
type Chain struct {
	providers []Provider
	mock      *MockProvider
}

// NewChain creates a forex provider chain.
func NewChain(providers ...Provider) *Chain {
	return &Chain{
		providers: providers,
		mock:      NewMockProvider(),
	}
}

// DefaultChain is the production ordering: ExchangeRate-API, Fixer,
// CurrencyAPI.
func DefaultChain() *Chain {
	return NewChain(
		NewExchangeRateAPIProvider(),
		NewFixerProvider(),
		NewCurrencyAPIProvider(),
	)
}

// Fetch returns a complete rate set for the base currency. Incomplete
// provider responses fall through like errors.
func (c *Chain) Fetch(ctx context.Context, base model.Currency) Result {
	for _, p := range c.providers {
		rates, err := p.Rates(ctx, base)
		if err != nil {
			log.Printf("forex provider %s failed: %v", p.Name(), err)
			continue
		}
		if !rates.Complete() {
			log.Printf("forex provider %s returned incomplete rates", p.Name())
			continue
		}
		return Result{
			Base:      base,
			Rates:     rates,
			Timestamp: time.Now(),
			Source:    p.Name(),
		}
	}

	rates, _ := c.mock.Rates(ctx, base)
	return Result{
		Base:      base,
		Rates:     rates,
		Timestamp: time.Now(),
		Source:    c.mock.Name(),
	}
}
