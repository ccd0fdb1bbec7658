// Package valuation implements the portfolio valuation core: pure,
// synchronous functions that turn holdings, quotes and FX rates into
// per-holding rows and portfolio totals. Nothing in this package performs
// I/O, blocks, or returns an error; missing or invalid input data degrades
// to zero values.
package valuation

import "github.com/RahulAr0x/Investment-pro/internal/model"

// ConvertToEUR converts an amount in the given currency to EUR using the
// rate table. Rates are quoted as units of foreign currency per euro, so the
// conversion is a division. A rate of exactly zero means "unavailable" and
// triggers the hardcoded fallback rate rather than producing Infinity.
//
// EUR converts as identity. Currencies outside {USD, GBP, EUR} are also
// treated as identity: the holdings model only admits USD and GBP positions,
// so an unknown currency here is a caller bug that should stay visible in
// the output rather than be silently zeroed.
func ConvertToEUR(amount float64, from model.Currency, fx model.FxRates) float64 {
	switch from {
	case model.USD:
		if fx.Rates.USD > 0 {
			return amount / fx.Rates.USD
		}
		return amount / model.FallbackUSDRate
	case model.GBP:
		if fx.Rates.GBP > 0 {
			return amount / fx.Rates.GBP
		}
		return amount / model.FallbackGBPRate
	}
	return amount
}
