package model

import "time"

// Fallback rates used when a live rate is zero or missing. These approximate
// long-running EUR/USD and EUR/GBP levels and keep conversions finite when
// every forex provider is down.
const (
	FallbackUSDRate = 1.08
	FallbackGBPRate = 0.87
)

// Rates holds units of foreign currency per one unit of the base currency,
// so nativeAmount / rate = baseAmount.
type Rates struct {
	USD float64 `json:"USD"`
	GBP float64 `json:"GBP"`
}

// FxRates is the reporting-currency rate table. Base is always EUR in this
// system. FetchedAt records when the rates were obtained so cached tables
// can be aged out.
type FxRates struct {
	Base      Currency  `json:"base"`
	Rates     Rates     `json:"rates"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// DefaultFxRates returns a rate table built from the fallback constants,
// stamped with the current time.
func DefaultFxRates() FxRates {
	return FxRates{
		Base:      EUR,
		Rates:     Rates{USD: FallbackUSDRate, GBP: FallbackGBPRate},
		FetchedAt: time.Now(),
	}
}
