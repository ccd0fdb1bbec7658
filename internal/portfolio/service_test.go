package portfolio_test

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/forex"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/portfolio"
	"github.com/RahulAr0x/Investment-pro/internal/quotes"
	"github.com/RahulAr0x/Investment-pro/internal/refresh"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
	"github.com/RahulAr0x/Investment-pro/internal/testutil"
	"github.com/RahulAr0x/Investment-pro/internal/watchlist"
)

var testHoldings = []model.Holding{
	{Symbol: "AAPL", Name: "Apple Inc.", Market: model.MarketUS, Category: model.CategoryUSStocks, Qty: 25, AvgPrice: 145.50, Currency: model.USD},
	{Symbol: "SHEL.L", Name: "Shell PLC", Market: model.MarketUK, Category: model.CategoryUKStocks, Qty: 150, AvgPrice: 24.50, Currency: model.GBP},
}

type fixedQuoteProvider struct {
	quotes []model.Quote
}

func (f *fixedQuoteProvider) Name() string { return "fixed" }

func (f *fixedQuoteProvider) Quotes(_ context.Context, _ []string) ([]model.Quote, error) {
	return f.quotes, nil
}

type fixedForexProvider struct {
	rates forex.Rates
}

func (f *fixedForexProvider) Name() string { return "fixed-fx" }

func (f *fixedForexProvider) Rates(_ context.Context, _ model.Currency) (forex.Rates, error) {
	return f.rates, nil
}

func newTestService(t *testing.T) (*portfolio.Service, *refresh.Service) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	snapshots := repository.NewSnapshotRepository(db)
	watchlistSvc := watchlist.NewService(repository.NewWatchlistRepository(db))

	quoteChain := quotes.NewChain(&fixedQuoteProvider{
		quotes: []model.Quote{
			{Symbol: "AAPL", Price: 190, PreviousClose: 188, Currency: model.USD},
			{Symbol: "SHEL.L", Price: 26, PreviousClose: 26, Currency: model.GBP},
		},
	})
	forexChain := forex.NewChain(&fixedForexProvider{
		rates: forex.Rates{USD: 1.08, GBP: 0.87, INR: 90},
	})

	refreshSvc := refresh.NewService(quoteChain, forexChain, snapshots, watchlistSvc,
		model.HoldingSymbols(testHoldings), time.Second)

	svc := portfolio.NewService(refreshSvc, snapshots, testHoldings, model.DefaultSnapshot)
	return svc, refreshSvc
}

func TestHoldings(t *testing.T) {
	svc, refreshSvc := newTestService(t)
	refreshSvc.Refresh(context.Background())

	view := svc.Holdings()

	if len(view.Holdings) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(view.Holdings))
	}
	if view.Source != "fixed" {
		t.Errorf("source = %s, want fixed", view.Source)
	}

	// AAPL: 25 * 190 / 1.08, SHEL.L: 150 * 26 / 0.87
	wantAAPL := 25.0 * 190.0 / 1.08
	wantShell := 150.0 * 26.0 / 0.87
	if !approxEqual(view.Holdings[0].ValueEUR, wantAAPL, 1e-6) {
		t.Errorf("AAPL value = %f, want %f", view.Holdings[0].ValueEUR, wantAAPL)
	}
	if !approxEqual(view.Totals.ValueEUR, wantAAPL+wantShell, 1e-6) {
		t.Errorf("total value = %f, want %f", view.Totals.ValueEUR, wantAAPL+wantShell)
	}
}

func TestSummary(t *testing.T) {
	svc, refreshSvc := newTestService(t)
	refreshSvc.Refresh(context.Background())

	summary := svc.Summary()

	if summary.TotalValueEUR <= 0 {
		t.Fatalf("total value = %f, want positive", summary.TotalValueEUR)
	}
	if !approxEqual(summary.TotalValueINR, summary.TotalValueEUR*90, 1e-6) {
		t.Errorf("INR value = %f, want %f", summary.TotalValueINR, summary.TotalValueEUR*90)
	}
	if !strings.HasPrefix(summary.FormattedValueEUR, "€") {
		t.Errorf("EUR string %q missing euro sign", summary.FormattedValueEUR)
	}
	if !strings.HasPrefix(summary.FormattedValueINR, "₹") {
		t.Errorf("INR string %q missing rupee sign", summary.FormattedValueINR)
	}
	if summary.Baseline.InitialYear != 2021 {
		t.Errorf("baseline year = %d, want 2021", summary.Baseline.InitialYear)
	}

	// AAPL climbed 2 USD on the day, Shell is flat.
	wantDayChange := 25.0 * 2.0 / 1.08
	if !approxEqual(summary.DayChangeEUR, wantDayChange, 1e-6) {
		t.Errorf("day change = %f, want %f", summary.DayChangeEUR, wantDayChange)
	}
}

func TestMetricsView(t *testing.T) {
	svc, refreshSvc := newTestService(t)
	refreshSvc.Refresh(context.Background())

	view := svc.Metrics()

	if len(view.Assets) != 2 {
		t.Fatalf("expected 2 asset records, got %d", len(view.Assets))
	}

	var weightSum float64
	for _, w := range view.Portfolio.AssetWeights {
		weightSum += w
	}
	if !approxEqual(weightSum, 100, 1e-6) {
		t.Errorf("weights sum to %f, want 100", weightSum)
	}
}

func TestGrowth(t *testing.T) {
	svc, refreshSvc := newTestService(t)
	refreshSvc.Refresh(context.Background())

	growth := svc.Growth(12184.06, 4)

	if growth.InitialValue != 12184.06 {
		t.Errorf("initial value = %f, want 12184.06", growth.InitialValue)
	}
	if growth.CurrentValue <= 0 {
		t.Errorf("current value = %f, want positive", growth.CurrentValue)
	}
	if growth.CAGR != growth.AnnualizedReturn {
		t.Errorf("CAGR %f should equal annualized return %f", growth.CAGR, growth.AnnualizedReturn)
	}
}

func TestFallbackBeforeFirstRefresh(t *testing.T) {
	svc, _ := newTestService(t)

	view := svc.Holdings()

	if view.Source != "cache" {
		t.Errorf("source = %s, want cache", view.Source)
	}
	// No quotes cached yet: every row degrades to zero value.
	for _, row := range view.Holdings {
		if row.ValueEUR != 0 {
			t.Errorf("row %s value = %f, want 0", row.Symbol, row.ValueEUR)
		}
		if row.ChangePct != nil {
			t.Errorf("row %s should have nil change pct", row.Symbol)
		}
	}
	if view.Fx.Rates.USD != model.FallbackUSDRate {
		t.Errorf("fallback USD rate = %f, want %f", view.Fx.Rates.USD, model.FallbackUSDRate)
	}
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
