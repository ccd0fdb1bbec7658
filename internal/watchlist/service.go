// Package watchlist tracks named symbol lists and price alerts.
package watchlist

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
)

// DefaultList is the watchlist used when the client names none.
const DefaultList = "default"

// Service manages watchlists and evaluates alerts against fresh quotes.
type Service struct {
	repo *repository.WatchlistRepository
	rng  *rand.Rand
}

// NewService creates a watchlist service.
func NewService(repo *repository.WatchlistRepository) *Service {
	return &Service{repo: repo}
}

// NewSeededService returns a service whose volume-spike sampling is
// deterministic, for tests.
func NewSeededService(repo *repository.WatchlistRepository, seed int64) *Service {
	return &Service{repo: repo, rng: rand.New(rand.NewSource(seed))}
}

// Add puts a symbol on a watchlist. Adding twice is a no-op.
func (s *Service) Add(list, symbol string) error {
	return s.repo.AddItem(model.WatchlistItem{
		List:    list,
		Symbol:  symbol,
		AddedAt: time.Now().UTC(),
	})
}

// Remove takes a symbol off a watchlist. Returns true if it was present.
func (s *Service) Remove(list, symbol string) (bool, error) {
	return s.repo.RemoveItem(list, symbol)
}

// Items returns the symbols on a watchlist, oldest first.
func (s *Service) Items(list string) ([]model.WatchlistItem, error) {
	return s.repo.GetItems(list)
}

// Contains reports whether a symbol is on a watchlist.
func (s *Service) Contains(list, symbol string) (bool, error) {
	return s.repo.HasItem(list, symbol)
}

// CreateAlert registers a new alert and returns it with its generated ID.
func (s *Service) CreateAlert(symbol string, alertType model.AlertType, condition float64, message string) (model.Alert, error) {
	alert := model.Alert{
		ID:        uuid.New().String(),
		Symbol:    symbol,
		Type:      alertType,
		Condition: condition,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateAlert(alert); err != nil {
		return model.Alert{}, err
	}
	return alert, nil
}

// Alerts returns all alerts, or only the ones that have not fired yet.
func (s *Service) Alerts(activeOnly bool) ([]model.Alert, error) {
	return s.repo.GetAlerts(activeOnly)
}

// DeleteAlert removes an alert. Returns true if it existed.
func (s *Service) DeleteAlert(alertID string) (bool, error) {
	return s.repo.DeleteAlert(alertID)
}

// CheckAlerts evaluates every untriggered alert against the quote map and
// returns the ones that fired. Symbols absent from the map are skipped.
// A fired alert is marked triggered and never re-arms.
func (s *Service) CheckAlerts(quotes map[string]model.Quote) ([]model.Alert, error) {
	active, err := s.repo.GetAlerts(true)
	if err != nil {
		return nil, err
	}

	triggered := []model.Alert{}
	for _, alert := range active {
		quote, ok := quotes[alert.Symbol]
		if !ok {
			continue
		}

		var fire bool
		switch alert.Type {
		case model.AlertPriceAbove:
			fire = quote.Price >= alert.Condition
		case model.AlertPriceBelow:
			fire = quote.Price <= alert.Condition
		case model.AlertVolumeSpike:
			// No volume feed yet; sample a spike
			fire = s.random() < 0.1
		}

		if !fire {
			continue
		}
		if err := s.repo.MarkTriggered(alert.ID); err != nil {
			return nil, err
		}
		alert.Triggered = true
		triggered = append(triggered, alert)
	}
	return triggered, nil
}

func (s *Service) random() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}
