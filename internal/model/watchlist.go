package model

import "time"

// AlertType identifies the condition an alert fires on.
type AlertType string

// Supported alert types.
const (
	AlertPriceAbove  AlertType = "price_above"
	AlertPriceBelow  AlertType = "price_below"
	AlertVolumeSpike AlertType = "volume_spike"
)

// Alert is a user-configured trigger on a watched symbol. Once triggered an
// alert stays triggered; it is never re-armed automatically.
type Alert struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Type      AlertType `json:"type"`
	Condition float64   `json:"condition"`
	Message   string    `json:"message"`
	Triggered bool      `json:"triggered"`
	CreatedAt time.Time `json:"createdAt"`
}

// WatchlistItem is a symbol tracked on a named watchlist.
type WatchlistItem struct {
	List    string    `json:"list"`
	Symbol  string    `json:"symbol"`
	AddedAt time.Time `json:"addedAt"`
}
