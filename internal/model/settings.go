package model

// DataProvider selects which quote source the dashboard prefers.
type DataProvider string

// Supported data providers.
const (
	ProviderYahoo        DataProvider = "yahoo"
	ProviderAlphaVantage DataProvider = "alphavantage"
)

// Settings holds per-dashboard preferences. AlphaVantageKey is stored
// encrypted at rest; the struct carries the plaintext only in memory.
type Settings struct {
	DashboardName      string       `json:"dashboardName"`
	DataProvider       DataProvider `json:"dataProvider"`
	AlphaVantageKey    string       `json:"alphavantageKey,omitempty"`
	RefreshIntervalSec int          `json:"refreshIntervalSec"`
	ReportingCurrency  Currency     `json:"reportingCurrency"`
}

// DefaultSettings are applied when no settings row exists yet.
var DefaultSettings = Settings{
	DashboardName:      "Pinnacle Investment Partners",
	DataProvider:       ProviderYahoo,
	RefreshIntervalSec: 15,
	ReportingCurrency:  EUR,
}
