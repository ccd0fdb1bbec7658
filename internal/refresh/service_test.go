package refresh_test

import (
	"context"
	"testing"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/forex"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/quotes"
	"github.com/RahulAr0x/Investment-pro/internal/refresh"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
	"github.com/RahulAr0x/Investment-pro/internal/testutil"
	"github.com/RahulAr0x/Investment-pro/internal/watchlist"
)

type stubQuoteProvider struct {
	quotes []model.Quote
}

func (s *stubQuoteProvider) Name() string { return "stub" }

func (s *stubQuoteProvider) Quotes(_ context.Context, _ []string) ([]model.Quote, error) {
	return s.quotes, nil
}

type stubForexProvider struct {
	rates forex.Rates
}

func (s *stubForexProvider) Name() string { return "stub-fx" }

func (s *stubForexProvider) Rates(_ context.Context, _ model.Currency) (forex.Rates, error) {
	return s.rates, nil
}

func newTestService(t *testing.T, symbols []string) (*refresh.Service, *repository.SnapshotRepository, *watchlist.Service) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	snapshots := repository.NewSnapshotRepository(db)
	watchlistSvc := watchlist.NewService(repository.NewWatchlistRepository(db))

	quoteChain := quotes.NewChain(&stubQuoteProvider{
		quotes: []model.Quote{
			testutil.TestQuote("AAPL", 210),
			testutil.TestQuote("MSFT", 430),
		},
	})
	forexChain := forex.NewChain(&stubForexProvider{
		rates: forex.Rates{USD: 1.08, GBP: 0.87, INR: 90},
	})

	svc := refresh.NewService(quoteChain, forexChain, snapshots, watchlistSvc, symbols, time.Second)
	return svc, snapshots, watchlistSvc
}

func TestRefreshCycle(t *testing.T) {
	symbols := []string{"AAPL", "MSFT"}
	svc, snapshots, watchlistSvc := newTestService(t, symbols)

	if _, ok := svc.Last(); ok {
		t.Error("expected no update before first cycle")
	}

	if _, err := watchlistSvc.CreateAlert("AAPL", model.AlertPriceAbove, 200, "above 200"); err != nil {
		t.Fatalf("CreateAlert failed: %v", err)
	}

	update := svc.Refresh(context.Background())

	t.Run("quotes and fx captured", func(t *testing.T) {
		if len(update.Quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(update.Quotes))
		}
		if update.Source != "stub" {
			t.Errorf("source = %s, want stub", update.Source)
		}
		if update.Fx.Rates.USD != 1.08 {
			t.Errorf("USD rate = %f, want 1.08", update.Fx.Rates.USD)
		}
	})

	t.Run("snapshots persisted", func(t *testing.T) {
		cached, err := snapshots.GetQuotes(symbols)
		if err != nil {
			t.Fatalf("GetQuotes failed: %v", err)
		}
		if len(cached) != 2 {
			t.Errorf("expected 2 cached quotes, got %d", len(cached))
		}

		fx, err := snapshots.LatestFxRates()
		if err != nil {
			t.Fatalf("LatestFxRates failed: %v", err)
		}
		if fx.Rates.INR != 90 {
			t.Errorf("INR rate = %f, want 90", fx.Rates.INR)
		}
	})

	t.Run("alerts evaluated", func(t *testing.T) {
		if len(update.Triggered) != 1 {
			t.Fatalf("expected 1 triggered alert, got %d", len(update.Triggered))
		}
		if update.Triggered[0].Symbol != "AAPL" {
			t.Errorf("triggered symbol = %s, want AAPL", update.Triggered[0].Symbol)
		}
	})

	t.Run("last update cached", func(t *testing.T) {
		last, ok := svc.Last()
		if !ok {
			t.Fatal("expected cached update")
		}
		if last.At != update.At {
			t.Errorf("cached update timestamp mismatch")
		}
	})
}

func TestSubscribe(t *testing.T) {
	svc, _, _ := newTestService(t, []string{"AAPL"})

	ch := svc.Subscribe()
	svc.Refresh(context.Background())

	select {
	case update := <-ch:
		if update.Source != "stub" {
			t.Errorf("source = %s, want stub", update.Source)
		}
	case <-time.After(time.Second):
		t.Fatal("expected update on subscriber channel")
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	svc, _, _ := newTestService(t, []string{"AAPL"})

	// Never drained; channel capacity is 4.
	svc.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			svc.Refresh(context.Background())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("refresh blocked on a slow subscriber")
	}
}
