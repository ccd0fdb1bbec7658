// Package quotes fetches market quotes from a chain of providers. Providers
// are tried in order until one returns usable data; the mock generator sits
// at the end of the chain and always succeeds, so a fully degraded system
// still produces a complete quote set.
package quotes

import (
	"context"
	"errors"
	"log"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// Provider is a single quote source.
type Provider interface {
	// Name identifies the provider in responses and logs.
	Name() string
	// Quotes fetches quotes for the given symbols. Implementations return
	// an error for transport or decoding failures; they do not backfill
	// missing symbols.
	Quotes(ctx context.Context, symbols []string) ([]model.Quote, error)
}

// ErrNoSymbols is returned when a fetch is attempted with no symbols.
var ErrNoSymbols = errors.New("no symbols provided")

// Result carries the fetched quotes together with the provider that
// produced them.
type Result struct {
	Quotes []model.Quote `json:"quotes"`
	Source string        `json:"source"`
}

// Chain tries providers in order. The final provider is expected to be the
// mock generator, which never fails.
type Chain struct {
	providers []Provider
	mock      *MockProvider
}

// NewChain creates a provider chain. The mock provider terminates the chain
// and also backfills individual unpriced symbols from otherwise successful
// responses.
func NewChain(providers ...Provider) *Chain {
	return &Chain{
		providers: providers,
		mock:      NewMockProvider(),
	}
}

// DefaultChain is the production ordering: Yahoo, then Financial Modeling
// Prep, then Alpha Vantage.
func DefaultChain(alphaKey string) *Chain {
	return NewChain(
		NewYahooProvider(),
		NewFMPProvider(),
		NewAlphaVantageProvider(alphaKey),
	)
}

// Fetch returns quotes for every requested symbol. Symbols a provider could
// not price (absent or non-positive price) are backfilled with mock quotes,
// mirroring how the dashboard always renders a full table.
func (c *Chain) Fetch(ctx context.Context, symbols []string) (Result, error) {
	if len(symbols) == 0 {
		return Result{}, ErrNoSymbols
	}

	for _, p := range c.providers {
		fetched, err := p.Quotes(ctx, symbols)
		if err != nil {
			log.Printf("quote provider %s failed: %v", p.Name(), err)
			continue
		}
		if len(fetched) == 0 {
			continue
		}
		return Result{
			Quotes: c.backfill(symbols, fetched),
			Source: p.Name(),
		}, nil
	}

	mocked, _ := c.mock.Quotes(ctx, symbols)
	return Result{Quotes: mocked, Source: c.mock.Name()}, nil
}

// backfill aligns fetched quotes to the requested symbol order, generating a
// mock quote for any symbol without a valid price.
func (c *Chain) backfill(symbols []string, fetched []model.Quote) []model.Quote {
	bySymbol := model.QuoteMap(fetched)

	out := make([]model.Quote, 0, len(symbols))
	for _, s := range symbols {
		if q, ok := bySymbol[s]; ok && q.Valid() {
			out = append(out, q)
			continue
		}
		out = append(out, c.mock.Quote(s))
	}
	return out
}
