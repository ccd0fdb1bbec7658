// Package metrics computes portfolio-level risk and allocation statistics
// from the same holdings/quotes/fx snapshot the valuation core consumes.
// Like the valuation package it is pure and synchronous: a Calculator is
// built once per refresh snapshot and never performs I/O.
package metrics

// AssetProfile is the static per-symbol metadata used for classification and
// the illustrative risk figures. Volatility and beta are placeholder levels,
// not statistics computed from historical series; a symbol absent from the
// profile table falls back to DefaultProfile.
type AssetProfile struct {
	Sector        string
	Region        string
	Volatility    float64
	Beta          float64
	DividendYield float64
}

// Default classification buckets and risk figures for unprofiled symbols.
const (
	DefaultSector     = "Other"
	DefaultRegion     = "United States"
	DefaultVolatility = 0.25
	DefaultBeta       = 1.0
)

// DefaultProfile is applied to any symbol without an entry in the profile
// table.
var DefaultProfile = AssetProfile{
	Sector:     DefaultSector,
	Region:     DefaultRegion,
	Volatility: DefaultVolatility,
	Beta:       DefaultBeta,
}

// defaultProfiles maps the configured portfolio symbols to their metadata.
// The table is an explicit symbol keyed mapping rather than substring
// dispatch on tickers, so adding a holding means adding a row here.
var defaultProfiles = map[string]AssetProfile{
	"AAPL":     {Sector: "Technology", Region: "United States", Volatility: 0.25, Beta: 1.2, DividendYield: 0.5},
	"MSFT":     {Sector: "Technology", Region: "United States", Volatility: 0.22, Beta: 0.9, DividendYield: 0.7},
	"GOOGL":    {Sector: "Technology", Region: "United States", Volatility: 0.28, Beta: 1.1, DividendYield: 0.0},
	"NVDA":     {Sector: "Technology", Region: "United States", Volatility: 0.35, Beta: 1.5, DividendYield: 0.1},
	"TSLA":     {Sector: "Technology", Region: "United States", Volatility: 0.45, Beta: 1.8, DividendYield: 0.0},
	"AMD":      {Sector: "Technology", Region: "United States", Volatility: 0.40, Beta: 1.6, DividendYield: 0.0},
	"PLTR":     {Sector: "Technology", Region: "United States", Volatility: 0.55, Beta: 1.9, DividendYield: 0.0},
	"CRWD":     {Sector: "Technology", Region: "United States", Volatility: 0.50, Beta: 1.4, DividendYield: 0.0},
	"JPM":      {Sector: "Financial Services", Region: "United States", Volatility: 0.30, Beta: 1.3, DividendYield: 2.8},
	"JNJ":      {Sector: "Healthcare", Region: "United States", Volatility: 0.18, Beta: 0.7, DividendYield: 2.9},
	"PFE":      {Sector: "Healthcare", Region: "United States", Volatility: 0.20, Beta: 0.8, DividendYield: 5.1},
	"KO":       {Sector: "Consumer Defensive", Region: "United States", Volatility: 0.16, Beta: 0.6, DividendYield: 3.1},
	"CAT":      {Sector: "Industrials", Region: "United States", Volatility: 0.28, Beta: 1.1, DividendYield: 1.9},
	"VNQ":      {Sector: "Real Estate", Region: "United States", Volatility: 0.25, Beta: 1.1, DividendYield: 3.2},
	"XAUUSD=X": {Sector: "Commodities", Region: "Commodities", Volatility: 0.20, Beta: 0.1, DividendYield: 0.0},
	"SHEL.L":   {Sector: "Energy", Region: "United Kingdom", Volatility: 0.26, Beta: 0.9, DividendYield: 5.8},
	"AZN.L":    {Sector: "Healthcare", Region: "United Kingdom", Volatility: 0.22, Beta: 0.6, DividendYield: 2.3},
	"HSBA.L":   {Sector: "Financial Services", Region: "United Kingdom", Volatility: 0.27, Beta: 1.0, DividendYield: 4.2},
	"VOD.L":    {Sector: "Communication Services", Region: "United Kingdom", Volatility: 0.30, Beta: 0.8, DividendYield: 7.5},
	"BP.L":     {Sector: "Energy", Region: "United Kingdom", Volatility: 0.28, Beta: 1.0, DividendYield: 4.6},
	"LLOY.L":   {Sector: "Financial Services", Region: "United Kingdom", Volatility: 0.32, Beta: 1.2, DividendYield: 5.0},
	"BARC.L":   {Sector: "Financial Services", Region: "United Kingdom", Volatility: 0.34, Beta: 1.3, DividendYield: 4.1},
}

// DefaultProfiles returns a copy of the built-in profile table so callers
// can extend it without mutating package state.
func DefaultProfiles() map[string]AssetProfile {
	out := make(map[string]AssetProfile, len(defaultProfiles))
	for k, v := range defaultProfiles {
		out[k] = v
	}
	return out
}
