package model

// Currency identifies a traded currency. EUR is the reporting currency;
// holdings themselves are denominated in USD or GBP.
type Currency string

// Supported currencies.
const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// Market identifies the market a holding trades on.
type Market string

// Supported markets.
const (
	MarketUS        Market = "US"
	MarketUK        Market = "UK"
	MarketCommodity Market = "Commodity"
	MarketREIT      Market = "REIT"
)

// Category is the allocation bucket a holding is reported under.
type Category string

// Supported categories.
const (
	CategoryUSStocks   Category = "US Stocks"
	CategoryUKStocks   Category = "UK Stocks"
	CategoryRealEstate Category = "Real Estate"
	CategoryGold       Category = "Gold"
	CategoryCrypto     Category = "Crypto"
)

// Holding represents a static configured position. Holdings are loaded once
// per session and never mutated by the valuation core. Qty is signed and may
// be fractional (commodities); AvgPrice is the cost basis per unit in the
// holding's native currency.
type Holding struct {
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Market   Market   `json:"market"`
	Category Category `json:"category"`
	Qty      float64  `json:"qty"`
	Unit     string   `json:"unit,omitempty"`
	AvgPrice float64  `json:"avgPrice"`
	Currency Currency `json:"currency"`
}

// Snapshot carries the reference figures the growth metrics are anchored on.
type Snapshot struct {
	AsOfTotalEUR      float64 `json:"asOfTotalEUR"`
	InitialDepositEUR float64 `json:"initialDepositEUR"`
	InitialYear       int     `json:"initialYear"`
}

// DefaultSnapshot is the reference snapshot for the default portfolio.
var DefaultSnapshot = Snapshot{
	AsOfTotalEUR:      54762.25,
	InitialDepositEUR: 12184.06,
	InitialYear:       2021,
}

// DefaultHoldings is the static portfolio configuration. Symbols follow the
// exchange-suffix convention (".L" for London listings).
var DefaultHoldings = []Holding{
	// US large cap tech
	{Symbol: "AAPL", Name: "Apple Inc.", Market: MarketUS, Category: CategoryUSStocks, Qty: 25, AvgPrice: 145.50, Currency: USD},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Market: MarketUS, Category: CategoryUSStocks, Qty: 12, AvgPrice: 280.75, Currency: USD},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Market: MarketUS, Category: CategoryUSStocks, Qty: 18, AvgPrice: 125.30, Currency: USD},
	{Symbol: "NVDA", Name: "NVIDIA Corp.", Market: MarketUS, Category: CategoryUSStocks, Qty: 6, AvgPrice: 420.00, Currency: USD},

	// US mid-cap growth
	{Symbol: "TSLA", Name: "Tesla Inc.", Market: MarketUS, Category: CategoryUSStocks, Qty: 15, AvgPrice: 220.45, Currency: USD},
	{Symbol: "AMD", Name: "Advanced Micro Devices", Market: MarketUS, Category: CategoryUSStocks, Qty: 20, AvgPrice: 95.20, Currency: USD},
	{Symbol: "PLTR", Name: "Palantir Technologies", Market: MarketUS, Category: CategoryUSStocks, Qty: 120, AvgPrice: 18.50, Currency: USD},
	{Symbol: "CRWD", Name: "CrowdStrike Holdings", Market: MarketUS, Category: CategoryUSStocks, Qty: 6, AvgPrice: 185.30, Currency: USD},

	// US healthcare and consumer
	{Symbol: "JNJ", Name: "Johnson & Johnson", Market: MarketUS, Category: CategoryUSStocks, Qty: 25, AvgPrice: 158.90, Currency: USD},
	{Symbol: "PFE", Name: "Pfizer Inc.", Market: MarketUS, Category: CategoryUSStocks, Qty: 60, AvgPrice: 42.15, Currency: USD},
	{Symbol: "KO", Name: "The Coca-Cola Company", Market: MarketUS, Category: CategoryUSStocks, Qty: 35, AvgPrice: 58.20, Currency: USD},

	// US financial and industrial
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Market: MarketUS, Category: CategoryUSStocks, Qty: 18, AvgPrice: 165.80, Currency: USD},
	{Symbol: "CAT", Name: "Caterpillar Inc.", Market: MarketUS, Category: CategoryUSStocks, Qty: 10, AvgPrice: 245.60, Currency: USD},

	// UK large cap
	{Symbol: "SHEL.L", Name: "Shell PLC", Market: MarketUK, Category: CategoryUKStocks, Qty: 150, AvgPrice: 24.50, Currency: GBP},
	{Symbol: "AZN.L", Name: "AstraZeneca PLC", Market: MarketUK, Category: CategoryUKStocks, Qty: 25, AvgPrice: 105.20, Currency: GBP},
	{Symbol: "HSBA.L", Name: "HSBC Holdings PLC", Market: MarketUK, Category: CategoryUKStocks, Qty: 80, AvgPrice: 6.45, Currency: GBP},

	// UK mid and small cap
	{Symbol: "VOD.L", Name: "Vodafone Group PLC", Market: MarketUK, Category: CategoryUKStocks, Qty: 800, AvgPrice: 0.85, Currency: GBP},
	{Symbol: "BP.L", Name: "BP PLC", Market: MarketUK, Category: CategoryUKStocks, Qty: 200, AvgPrice: 4.85, Currency: GBP},
	{Symbol: "LLOY.L", Name: "Lloyds Banking Group", Market: MarketUK, Category: CategoryUKStocks, Qty: 1500, AvgPrice: 0.52, Currency: GBP},
	{Symbol: "BARC.L", Name: "Barclays PLC", Market: MarketUK, Category: CategoryUKStocks, Qty: 600, AvgPrice: 1.85, Currency: GBP},

	// REITs and commodities
	{Symbol: "VNQ", Name: "Vanguard REIT ETF", Market: MarketREIT, Category: CategoryRealEstate, Qty: 35, AvgPrice: 88.30, Currency: USD},
	{Symbol: "XAUUSD=X", Name: "Gold Spot (XAU/USD)", Market: MarketCommodity, Category: CategoryGold, Qty: 0.4, Unit: "oz", AvgPrice: 1950.00, Currency: USD},
}

// HoldingSymbols returns the symbols of the given holdings in order.
func HoldingSymbols(holdings []Holding) []string {
	symbols := make([]string, len(holdings))
	for i, h := range holdings {
		symbols[i] = h.Symbol
	}
	return symbols
}
