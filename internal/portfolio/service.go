// Package portfolio answers portfolio queries by valuing the configured
// holdings against the freshest market snapshot available.
package portfolio

import (
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/forex"
	"github.com/RahulAr0x/Investment-pro/internal/metrics"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/refresh"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
	"github.com/RahulAr0x/Investment-pro/internal/valuation"
)

// HoldingsView is the holdings endpoint payload.
type HoldingsView struct {
	Holdings []valuation.HoldingComputed `json:"holdings"`
	Totals   valuation.PortfolioTotals   `json:"totals"`
	Fx       forex.Result                `json:"fx"`
	Source   string                      `json:"source"`
	At       time.Time                   `json:"at"`
}

// Summary is the headline card payload: totals, day change and display
// strings in both reporting currencies.
type Summary struct {
	TotalValueEUR     float64        `json:"totalValueEUR"`
	TotalCostEUR      float64        `json:"totalCostEUR"`
	TotalPnLEUR       float64        `json:"totalPnLEUR"`
	TotalPnLPct       float64        `json:"totalPnLPercent"`
	DayChangeEUR      float64        `json:"dayChangeEUR"`
	DayChangePct      float64        `json:"dayChangePercent"`
	TotalValueINR     float64        `json:"totalValueINR"`
	FormattedValueEUR string         `json:"formattedValueEUR"`
	FormattedValueINR string         `json:"formattedValueINR"`
	FormattedPnLEUR   string         `json:"formattedPnLEUR"`
	Baseline          model.Snapshot `json:"baseline"`
	Source            string         `json:"source"`
	At                time.Time      `json:"at"`
}

// MetricsView bundles portfolio-level and per-asset metrics.
type MetricsView struct {
	Portfolio metrics.PortfolioMetrics `json:"portfolio"`
	Assets    []metrics.AssetMetrics   `json:"assets"`
	At        time.Time                `json:"at"`
}

// Service values the configured holdings. Quotes and rates come from the
// last refresh cycle, then from the sqlite snapshot cache, then from the
// static fallbacks, in that order.
type Service struct {
	refresh   *refresh.Service
	snapshots *repository.SnapshotRepository
	holdings  []model.Holding
	baseline  model.Snapshot
}

// NewService creates a portfolio service over the given holdings.
func NewService(
	refreshSvc *refresh.Service,
	snapshots *repository.SnapshotRepository,
	holdings []model.Holding,
	baseline model.Snapshot,
) *Service {
	return &Service{
		refresh:   refreshSvc,
		snapshots: snapshots,
		holdings:  holdings,
		baseline:  baseline,
	}
}

// marketData is one resolved snapshot of quotes plus rates.
type marketData struct {
	quotes map[string]model.Quote
	fx     forex.Result
	source string
	at     time.Time
}

func (s *Service) snapshot() marketData {
	if update, ok := s.refresh.Last(); ok {
		return marketData{
			quotes: model.QuoteMap(update.Quotes),
			fx:     update.Fx,
			source: update.Source,
			at:     update.At,
		}
	}

	// Before the first cycle, fall back to the sqlite cache.
	data := marketData{
		quotes: map[string]model.Quote{},
		source: "cache",
		at:     time.Now().UTC(),
	}
	if cached, err := s.snapshots.GetQuotes(model.HoldingSymbols(s.holdings)); err == nil {
		data.quotes = model.QuoteMap(cached)
	}
	if fx, err := s.snapshots.LatestFxRates(); err == nil {
		data.fx = fx
	} else {
		fallback := model.DefaultFxRates()
		data.fx = forex.Result{
			Base:      fallback.Base,
			Rates:     forex.Rates{USD: fallback.Rates.USD, GBP: fallback.Rates.GBP},
			Timestamp: fallback.FetchedAt,
			Source:    "fallback",
		}
	}
	return data
}

// Holdings returns every computed row plus totals.
func (s *Service) Holdings() HoldingsView {
	data := s.snapshot()
	rows, totals := valuation.ComputeHoldings(s.holdings, data.quotes, data.fx.FxRates())

	return HoldingsView{
		Holdings: rows,
		Totals:   totals,
		Fx:       data.fx,
		Source:   data.source,
		At:       data.at,
	}
}

// Summary returns the headline figures with formatted display strings. The
// INR value is zero when no INR rate is known.
func (s *Service) Summary() Summary {
	data := s.snapshot()
	fx := data.fx.FxRates()
	_, totals := valuation.ComputeHoldings(s.holdings, data.quotes, fx)

	calc := metrics.NewCalculator(s.holdings, data.quotes, fx)
	portfolioMetrics := calc.PortfolioMetrics()

	totalValueINR := totals.ValueEUR * data.fx.Rates.INR

	return Summary{
		TotalValueEUR:     totals.ValueEUR,
		TotalCostEUR:      totals.CostEUR,
		TotalPnLEUR:       totals.PnLEUR,
		TotalPnLPct:       totals.PnLPct,
		DayChangeEUR:      portfolioMetrics.DayChange,
		DayChangePct:      portfolioMetrics.DayChangePct,
		TotalValueINR:     totalValueINR,
		FormattedValueEUR: valuation.FormatEUR(totals.ValueEUR),
		FormattedValueINR: valuation.FormatINR(totalValueINR),
		FormattedPnLEUR:   valuation.FormatEUR(totals.PnLEUR),
		Baseline:          s.baseline,
		Source:            data.source,
		At:                data.at,
	}
}

// Metrics returns risk and allocation metrics for the current snapshot.
func (s *Service) Metrics() MetricsView {
	data := s.snapshot()
	calc := metrics.NewCalculator(s.holdings, data.quotes, data.fx.FxRates())

	return MetricsView{
		Portfolio: calc.PortfolioMetrics(),
		Assets:    calc.AssetMetrics(),
		At:        data.at,
	}
}

// Growth computes growth metrics from an initial deposit over a horizon in
// years, against the current total value.
func (s *Service) Growth(initialValue, timeHorizonYears float64) metrics.GrowthMetrics {
	data := s.snapshot()
	calc := metrics.NewCalculator(s.holdings, data.quotes, data.fx.FxRates())
	return calc.GrowthMetrics(initialValue, timeHorizonYears)
}
