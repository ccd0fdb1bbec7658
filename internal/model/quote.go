package model

// Quote is a single price observation for a symbol, supplied per refresh
// cycle by one of the quote providers. A Price of zero (or a symbol missing
// from a quote map entirely) means "no valid quote"; the valuation core
// degrades such holdings to a zero-value row instead of failing.
type Quote struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name,omitempty"`
	Price         float64  `json:"price"`
	PreviousClose float64  `json:"previousClose,omitempty"`
	Change        float64  `json:"change,omitempty"`
	ChangePercent float64  `json:"changePercent,omitempty"`
	Currency      Currency `json:"currency,omitempty"`
	Exchange      string   `json:"exchange,omitempty"`
	MarketState   string   `json:"marketState,omitempty"`
}

// Valid reports whether the quote carries a usable price.
func (q Quote) Valid() bool {
	return q.Price > 0
}

// QuoteMap keys quotes by symbol for lookup by the valuation core.
// Quotes without a symbol are dropped.
func QuoteMap(quotes []Quote) map[string]Quote {
	m := make(map[string]Quote, len(quotes))
	for _, q := range quotes {
		if q.Symbol != "" {
			m[q.Symbol] = q
		}
	}
	return m
}
