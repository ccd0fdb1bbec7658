package valuation

import "github.com/RahulAr0x/Investment-pro/internal/model"

// HoldingComputed is the per-holding derived record, recomputed on every
// refresh cycle and never persisted. ChangePct is nil when the symbol had no
// quote; callers must treat that distinctly from a zero (no change) value.
type HoldingComputed struct {
	Symbol    string         `json:"symbol"`
	Name      string         `json:"name"`
	Category  model.Category `json:"category"`
	Currency  model.Currency `json:"currency"`
	Qty       float64        `json:"qty"`
	Unit      string         `json:"unit,omitempty"`
	AvgPrice  float64        `json:"avgPrice"`
	LastPrice float64        `json:"lastPrice"`
	ValueEUR  float64        `json:"valueEUR"`
	CostEUR   float64        `json:"costEUR"`
	PnLEUR    float64        `json:"pnlEUR"`
	PnLPct    float64        `json:"pnlPct"`
	ChangePct *float64       `json:"changePct,omitempty"`
}

// PortfolioTotals aggregates HoldingComputed rows.
type PortfolioTotals struct {
	ValueEUR float64 `json:"valueEUR"`
	CostEUR  float64 `json:"costEUR"`
	PnLEUR   float64 `json:"pnlEUR"`
	PnLPct   float64 `json:"pnlPct"`
}

// ComputeHoldings values every holding against the quote map and rate table
// and reduces the rows into portfolio totals.
//
// A holding whose symbol is absent from the quote map (or whose quote has a
// non-positive price) is valued at a last price of zero: its ValueEUR is
// zero and its PnLEUR is the negated cost basis. Totals are computed over
// all rows, including zero-priced ones, so unpriced holdings still
// contribute their cost to the P&L denominator; use PricedTotals for
// displays that should ignore unpriced rows.
//
// PnLPct is defined as zero whenever the cost basis is zero. That guard is a
// contract, not a float accident: a zero-cost holding never reports NaN or
// Infinity.
func ComputeHoldings(holdings []model.Holding, quotes map[string]model.Quote, fx model.FxRates) ([]HoldingComputed, PortfolioTotals) {
	rows := make([]HoldingComputed, 0, len(holdings))

	for _, h := range holdings {
		q, ok := quotes[h.Symbol]

		lastPrice := 0.0
		var changePct *float64
		if ok {
			if q.Price > 0 {
				lastPrice = q.Price
			}
			pct := q.ChangePercent
			changePct = &pct
		}

		valueEUR := ConvertToEUR(lastPrice*h.Qty, h.Currency, fx)
		costEUR := ConvertToEUR(h.AvgPrice*h.Qty, h.Currency, fx)
		pnlEUR := valueEUR - costEUR

		pnlPct := 0.0
		if costEUR != 0 {
			pnlPct = pnlEUR / costEUR * 100
		}

		rows = append(rows, HoldingComputed{
			Symbol:    h.Symbol,
			Name:      h.Name,
			Category:  h.Category,
			Currency:  h.Currency,
			Qty:       h.Qty,
			Unit:      h.Unit,
			AvgPrice:  h.AvgPrice,
			LastPrice: lastPrice,
			ValueEUR:  valueEUR,
			CostEUR:   costEUR,
			PnLEUR:    pnlEUR,
			PnLPct:    pnlPct,
			ChangePct: changePct,
		})
	}

	return rows, Totals(rows)
}

// Totals reduces rows into portfolio totals. Summation is commutative and
// associative up to float rounding; order does not matter semantically.
func Totals(rows []HoldingComputed) PortfolioTotals {
	var valueEUR, costEUR float64
	for _, r := range rows {
		valueEUR += r.ValueEUR
		costEUR += r.CostEUR
	}

	pnlEUR := valueEUR - costEUR
	pnlPct := 0.0
	if costEUR != 0 {
		pnlPct = pnlEUR / costEUR * 100
	}

	return PortfolioTotals{
		ValueEUR: valueEUR,
		CostEUR:  costEUR,
		PnLEUR:   pnlEUR,
		PnLPct:   pnlPct,
	}
}

// PricedTotals reduces only rows with a positive market value. It is the
// degraded-data companion to Totals: when many symbols are unpriced, totals
// over all rows report a distorted P&L percentage because unpriced holdings
// contribute cost but no value.
func PricedTotals(rows []HoldingComputed) PortfolioTotals {
	priced := make([]HoldingComputed, 0, len(rows))
	for _, r := range rows {
		if r.ValueEUR > 0 {
			priced = append(priced, r)
		}
	}
	return Totals(priced)
}
