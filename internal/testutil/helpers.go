package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/forex"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/portfolio"
	"github.com/RahulAr0x/Investment-pro/internal/quotes"
	"github.com/RahulAr0x/Investment-pro/internal/refresh"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
	"github.com/RahulAr0x/Investment-pro/internal/service"
	"github.com/RahulAr0x/Investment-pro/internal/settings"
	"github.com/RahulAr0x/Investment-pro/internal/watchlist"
)

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestWatchlistService(t *testing.T, db *sql.DB) *watchlist.Service {
	t.Helper()

	return watchlist.NewService(repository.NewWatchlistRepository(db))
}

// NewTestSettingsService builds a settings service in plaintext mode, so
// tests can assert on stored values directly.
func NewTestSettingsService(t *testing.T, db *sql.DB) *settings.Service {
	t.Helper()

	svc, err := settings.NewService(repository.NewSettingsRepository(db), "")
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}
	return svc
}

// NewTestRefreshService builds a refresh service whose provider chains are
// empty, so every cycle degrades to deterministic-enough mock data without
// touching the network.
func NewTestRefreshService(t *testing.T, db *sql.DB, symbols []string) *refresh.Service {
	t.Helper()

	snapshots := repository.NewSnapshotRepository(db)
	return refresh.NewService(
		quotes.NewChain(),
		forex.NewChain(),
		snapshots,
		NewTestWatchlistService(t, db),
		symbols,
		time.Minute,
	)
}

// NewTestPortfolioService builds a portfolio service over the default
// holdings, backed by an offline refresh service.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *portfolio.Service {
	t.Helper()

	holdings := model.DefaultHoldings
	refreshSvc := NewTestRefreshService(t, db, model.HoldingSymbols(holdings))

	return portfolio.NewService(
		refreshSvc,
		repository.NewSnapshotRepository(db),
		holdings,
		model.DefaultSnapshot,
	)
}
