package metrics_test

import (
	"math"
	"testing"

	"github.com/RahulAr0x/Investment-pro/internal/metrics"
	"github.com/RahulAr0x/Investment-pro/internal/model"
)

func approxEqual(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*epsilon
}

func testFx() model.FxRates {
	return model.FxRates{
		Base:  model.EUR,
		Rates: model.Rates{USD: 1.08, GBP: 0.87},
	}
}

func testHoldings() []model.Holding {
	return []model.Holding{
		{Symbol: "AAPL", Name: "Apple Inc.", Qty: 25, AvgPrice: 145.50, Currency: model.USD},
		{Symbol: "SHEL.L", Name: "Shell PLC", Qty: 150, AvgPrice: 24.50, Currency: model.GBP},
	}
}

func testQuotes() map[string]model.Quote {
	return map[string]model.Quote{
		"AAPL":   {Symbol: "AAPL", Price: 190.00, PreviousClose: 188.00},
		"SHEL.L": {Symbol: "SHEL.L", Price: 26.00, PreviousClose: 26.00},
	}
}

func TestCalculator_AssetMetrics(t *testing.T) {
	t.Run("weights of fully priced portfolio sum to 100", func(t *testing.T) {
		c := metrics.NewCalculator(testHoldings(), testQuotes(), testFx())
		assets := c.AssetMetrics()

		var sum float64
		for _, a := range assets {
			sum += a.Weight
		}
		if !approxEqual(sum, 100, 1e-9) {
			t.Errorf("Weights sum to %v, want 100", sum)
		}
	})

	t.Run("zero total value yields zero weights", func(t *testing.T) {
		c := metrics.NewCalculator(testHoldings(), map[string]model.Quote{}, testFx())
		for _, a := range c.AssetMetrics() {
			if a.Weight != 0 {
				t.Errorf("Weight for %s = %v, want 0 with no priced assets", a.Symbol, a.Weight)
			}
		}
	})

	t.Run("day change is converted to EUR per holding", func(t *testing.T) {
		c := metrics.NewCalculator(testHoldings(), testQuotes(), testFx())
		assets := c.AssetMetrics()

		// AAPL moved $2 on 25 shares: $50 / 1.08.
		want := 50.0 / 1.08
		if !approxEqual(assets[0].DayChange, want, 1e-9) {
			t.Errorf("AAPL DayChange = %v, want %v", assets[0].DayChange, want)
		}
		if assets[1].DayChange != 0 {
			t.Errorf("SHEL.L DayChange = %v, want 0 for flat close", assets[1].DayChange)
		}
	})

	t.Run("profiled symbols get table figures, others the defaults", func(t *testing.T) {
		holdings := append(testHoldings(), model.Holding{Symbol: "ZZZZ", Name: "Unknown", Qty: 1, AvgPrice: 10, Currency: model.USD})
		c := metrics.NewCalculator(holdings, testQuotes(), testFx())
		assets := c.AssetMetrics()

		if assets[0].Volatility != 0.25 || assets[0].Beta != 1.2 {
			t.Errorf("AAPL profile = vol %v beta %v, want 0.25/1.2", assets[0].Volatility, assets[0].Beta)
		}
		unknown := assets[2]
		if unknown.Volatility != metrics.DefaultVolatility {
			t.Errorf("Unknown volatility = %v, want default %v", unknown.Volatility, metrics.DefaultVolatility)
		}
		if unknown.Beta != metrics.DefaultBeta {
			t.Errorf("Unknown beta = %v, want default %v", unknown.Beta, metrics.DefaultBeta)
		}
		if unknown.DividendYield != 0 {
			t.Errorf("Unknown dividend yield = %v, want default 0", unknown.DividendYield)
		}
	})
}

func TestCalculator_PortfolioMetrics(t *testing.T) {
	t.Run("aggregates values and groups weights into buckets", func(t *testing.T) {
		c := metrics.NewCalculator(testHoldings(), testQuotes(), testFx())
		pm := c.PortfolioMetrics()

		if !approxEqual(pm.TotalValue, 8880.91, 1e-4) {
			t.Errorf("TotalValue = %v, want ≈8880.91", pm.TotalValue)
		}

		var sectorSum float64
		for _, w := range pm.SectorWeights {
			sectorSum += w
		}
		if !approxEqual(sectorSum, 100, 1e-9) {
			t.Errorf("Sector weights sum to %v, want 100", sectorSum)
		}

		if _, ok := pm.SectorWeights["Technology"]; !ok {
			t.Error("Expected Technology sector bucket for AAPL")
		}
		if _, ok := pm.GeographicWeights["United Kingdom"]; !ok {
			t.Error("Expected United Kingdom region bucket for SHEL.L")
		}
	})

	t.Run("unprofiled symbols fall into the default buckets", func(t *testing.T) {
		holdings := []model.Holding{{Symbol: "ZZZZ", Name: "Unknown", Qty: 10, AvgPrice: 5, Currency: model.USD}}
		quotes := map[string]model.Quote{"ZZZZ": {Symbol: "ZZZZ", Price: 10}}

		pm := metrics.NewCalculator(holdings, quotes, testFx()).PortfolioMetrics()
		if !approxEqual(pm.SectorWeights["Other"], 100, 1e-9) {
			t.Errorf("Other sector weight = %v, want 100", pm.SectorWeights["Other"])
		}
		if !approxEqual(pm.GeographicWeights["United States"], 100, 1e-9) {
			t.Errorf("United States region weight = %v, want 100", pm.GeographicWeights["United States"])
		}
	})

	t.Run("volatility is the variance-only approximation", func(t *testing.T) {
		c := metrics.NewCalculator(testHoldings(), testQuotes(), testFx())
		pm := c.PortfolioMetrics()

		var want float64
		for _, a := range c.AssetMetrics() {
			w := a.Weight / 100
			want += w * w * a.Volatility * a.Volatility
		}
		want = math.Sqrt(want)
		if !approxEqual(pm.Volatility, want, 1e-12) {
			t.Errorf("Volatility = %v, want %v", pm.Volatility, want)
		}
	})

	t.Run("sharpe ratio is zero when volatility is zero", func(t *testing.T) {
		pm := metrics.NewCalculator(nil, nil, testFx()).PortfolioMetrics()
		if pm.SharpeRatio != 0 {
			t.Errorf("SharpeRatio = %v, want 0 for empty portfolio", pm.SharpeRatio)
		}
		if pm.Volatility != 0 {
			t.Errorf("Volatility = %v, want 0 for empty portfolio", pm.Volatility)
		}
	})

	t.Run("max drawdown is the worst losing asset, zero when all gain", func(t *testing.T) {
		c := metrics.NewCalculator(testHoldings(), testQuotes(), testFx())
		if dd := c.PortfolioMetrics().MaxDrawdown; dd != 0 {
			t.Errorf("MaxDrawdown = %v, want 0 when every asset is up", dd)
		}

		// Drop AAPL without a quote: its unrealized return becomes -100%.
		quotes := map[string]model.Quote{"SHEL.L": {Symbol: "SHEL.L", Price: 26.00}}
		c = metrics.NewCalculator(testHoldings(), quotes, testFx())
		if dd := c.PortfolioMetrics().MaxDrawdown; !approxEqual(dd, 1.0, 1e-9) {
			t.Errorf("MaxDrawdown = %v, want 1.0 for a -100%% asset", dd)
		}
	})

	t.Run("beta is the weight-weighted average", func(t *testing.T) {
		c := metrics.NewCalculator(testHoldings(), testQuotes(), testFx())
		pm := c.PortfolioMetrics()

		var want float64
		for _, a := range c.AssetMetrics() {
			want += a.Weight / 100 * a.Beta
		}
		if !approxEqual(pm.Beta, want, 1e-12) {
			t.Errorf("Beta = %v, want %v", pm.Beta, want)
		}
	})

	t.Run("day change percent relates change to the prior total", func(t *testing.T) {
		c := metrics.NewCalculator(testHoldings(), testQuotes(), testFx())
		pm := c.PortfolioMetrics()

		want := pm.DayChange / (pm.TotalValue - pm.DayChange) * 100
		if !approxEqual(pm.DayChangePct, want, 1e-12) {
			t.Errorf("DayChangePct = %v, want %v", pm.DayChangePct, want)
		}
	})
}

func TestGrowth(t *testing.T) {
	t.Run("computes total and annualized returns", func(t *testing.T) {
		g := metrics.Growth(12184.06, 54762.25, 4)

		if !approxEqual(g.TotalReturn, 42578.19, 1e-6) {
			t.Errorf("TotalReturn = %v, want 42578.19", g.TotalReturn)
		}
		wantAnnualized := (math.Pow(54762.25/12184.06, 0.25) - 1) * 100
		if !approxEqual(g.AnnualizedReturn, wantAnnualized, 1e-9) {
			t.Errorf("AnnualizedReturn = %v, want %v", g.AnnualizedReturn, wantAnnualized)
		}
		if g.CAGR != g.AnnualizedReturn {
			t.Errorf("CAGR = %v, want same as annualized return %v", g.CAGR, g.AnnualizedReturn)
		}
	})

	t.Run("non-positive horizon defines annualized return as zero", func(t *testing.T) {
		for _, years := range []float64{0, -1} {
			g := metrics.Growth(1000, 2000, years)
			if g.AnnualizedReturn != 0 {
				t.Errorf("AnnualizedReturn with %v years = %v, want 0", years, g.AnnualizedReturn)
			}
		}
	})

	t.Run("zero initial value degrades percentages to zero", func(t *testing.T) {
		g := metrics.Growth(0, 2000, 3)
		if g.TotalReturnPct != 0 {
			t.Errorf("TotalReturnPct = %v, want 0", g.TotalReturnPct)
		}
		if g.AnnualizedReturn != 0 {
			t.Errorf("AnnualizedReturn = %v, want 0", g.AnnualizedReturn)
		}
		if math.IsNaN(g.AverageAnnualGrowth) || math.IsInf(g.AverageAnnualGrowth, 0) {
			t.Errorf("AverageAnnualGrowth is non-finite: %v", g.AverageAnnualGrowth)
		}
	})

	t.Run("average annual growth divides by at least one year", func(t *testing.T) {
		g := metrics.Growth(1000, 1500, 0.5)
		if !approxEqual(g.AverageAnnualGrowth, 50, 1e-9) {
			t.Errorf("AverageAnnualGrowth = %v, want 50 (horizon clamped to 1)", g.AverageAnnualGrowth)
		}
	})
}
