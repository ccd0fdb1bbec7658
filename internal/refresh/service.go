// Package refresh runs the periodic market data cycle: fetch quotes and fx
// rates, persist snapshots, evaluate alerts, and fan updates out to
// subscribers.
package refresh

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/RahulAr0x/Investment-pro/internal/forex"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/quotes"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
	"github.com/RahulAr0x/Investment-pro/internal/watchlist"
)

// fxSnapshotRetention bounds how long old fx rows are kept.
const fxSnapshotRetention = 7 * 24 * time.Hour

// Update is one completed refresh cycle.
type Update struct {
	Quotes    []model.Quote `json:"quotes"`
	Source    string        `json:"source"`
	Fx        forex.Result  `json:"fx"`
	Triggered []model.Alert `json:"triggeredAlerts,omitempty"`
	At        time.Time     `json:"at"`
}

// Service schedules refresh cycles and caches the latest results.
type Service struct {
	quotes    *quotes.Chain
	forex     *forex.Chain
	snapshots *repository.SnapshotRepository
	watchlist *watchlist.Service
	symbols   []string
	interval  time.Duration

	cron    *cron.Cron
	entryID cron.EntryID

	mu          sync.RWMutex
	last        *Update
	subscribers []chan Update
}

// NewService creates a refresh service covering the given symbols.
func NewService(
	quoteChain *quotes.Chain,
	forexChain *forex.Chain,
	snapshots *repository.SnapshotRepository,
	watchlistSvc *watchlist.Service,
	symbols []string,
	interval time.Duration,
) *Service {
	return &Service{
		quotes:    quoteChain,
		forex:     forexChain,
		snapshots: snapshots,
		watchlist: watchlistSvc,
		symbols:   symbols,
		interval:  interval,
		cron:      cron.New(cron.WithSeconds()),
	}
}

// Start runs one refresh immediately, then schedules the recurring cycle.
func (s *Service) Start() error {
	s.Refresh(context.Background())

	spec := fmt.Sprintf("@every %s", s.interval)
	entryID, err := s.cron.AddFunc(spec, func() {
		s.Refresh(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}
	s.entryID = entryID
	s.cron.Start()

	log.Printf("refresh scheduler started: %d symbols every %s", len(s.symbols), s.interval)
	return nil
}

// Stop halts the scheduler and waits for a running cycle to finish.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("refresh scheduler stopped")
}

// Refresh runs one cycle and returns the resulting update.
func (s *Service) Refresh(ctx context.Context) Update {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	quoteResult, err := s.quotes.Fetch(ctx, s.symbols)
	if err != nil {
		log.Printf("quote refresh failed: %v", err)
	}
	fxResult := s.forex.Fetch(ctx, model.EUR)
	now := time.Now().UTC()

	if err := s.snapshots.SaveQuotes(quoteResult.Quotes, quoteResult.Source, now); err != nil {
		log.Printf("failed to persist quote snapshot: %v", err)
	}
	if err := s.snapshots.SaveFxRates(fxResult); err != nil {
		log.Printf("failed to persist fx snapshot: %v", err)
	}
	if _, err := s.snapshots.PruneFxSnapshots(now.Add(-fxSnapshotRetention)); err != nil {
		log.Printf("failed to prune fx snapshots: %v", err)
	}

	triggered, err := s.watchlist.CheckAlerts(model.QuoteMap(quoteResult.Quotes))
	if err != nil {
		log.Printf("failed to check alerts: %v", err)
	}
	for _, alert := range triggered {
		log.Printf("alert fired: %s %s %.2f (%s)", alert.Symbol, alert.Type, alert.Condition, alert.Message)
	}

	update := Update{
		Quotes:    quoteResult.Quotes,
		Source:    quoteResult.Source,
		Fx:        fxResult,
		Triggered: triggered,
		At:        now,
	}

	s.mu.Lock()
	s.last = &update
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- update:
		default: // slow subscriber, drop the update
		}
	}
	return update
}

// Last returns the most recent update, or false before the first cycle.
func (s *Service) Last() (Update, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return Update{}, false
	}
	return *s.last, true
}

// Subscribe registers a channel that receives future updates. Updates are
// dropped rather than blocking a full channel.
func (s *Service) Subscribe() <-chan Update {
	ch := make(chan Update, 4)

	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()
	return ch
}

// Symbols returns the symbols covered by the refresh cycle.
func (s *Service) Symbols() []string {
	return s.symbols
}
