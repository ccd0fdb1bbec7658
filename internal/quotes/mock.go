package quotes

import (
	"context"
	"math"
	"math/rand"
	"strings"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// mockBase anchors generated prices to realistic market levels per symbol.
type mockBase struct {
	price float64
	name  string
}

var mockUSBases = map[string]mockBase{
	"AAPL":     {190, "Apple Inc."},
	"MSFT":     {430, "Microsoft Corporation"},
	"GOOGL":    {150, "Alphabet Inc."},
	"NVDA":     {875, "NVIDIA Corporation"},
	"TSLA":     {250, "Tesla Inc."},
	"AMD":      {142, "Advanced Micro Devices"},
	"PLTR":     {28, "Palantir Technologies"},
	"CRWD":     {312, "CrowdStrike Holdings"},
	"JPM":      {180, "JPMorgan Chase & Co."},
	"JNJ":      {170, "Johnson & Johnson"},
	"PFE":      {43, "Pfizer Inc."},
	"KO":       {60, "The Coca-Cola Company"},
	"CAT":      {280, "Caterpillar Inc."},
	"VNQ":      {95, "Vanguard REIT ETF"},
	"XAUUSD=X": {2080, "Gold Spot"},
}

var mockUKBases = map[string]mockBase{
	"SHEL.L": {26, "Shell PLC"},
	"AZN.L":  {110, "AstraZeneca PLC"},
	"HSBA.L": {6.8, "HSBC Holdings PLC"},
	"VOD.L":  {0.9, "Vodafone Group PLC"},
	"BP.L":   {5.2, "BP PLC"},
	"LLOY.L": {0.55, "Lloyds Banking Group"},
	"BARC.L": {2.0, "Barclays PLC"},
}

// highVolatilitySymbols get a wider price jitter in generated quotes.
var highVolatilitySymbols = map[string]bool{
	"PLTR": true,
	"CRWD": true,
	"SNOW": true,
}

// MockProvider generates synthetic quotes anchored to a static base-price
// table. It is the always-succeeding terminator of the provider chain; the
// valuation core cannot distinguish its quotes from real ones, and must not
// try to.
type MockProvider struct {
	rand *rand.Rand
}

// NewMockProvider creates a mock provider with a non-deterministic source.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// NewSeededMockProvider creates a mock provider with a deterministic source
// for tests.
func NewSeededMockProvider(seed int64) *MockProvider {
	return &MockProvider{rand: rand.New(rand.NewSource(seed))}
}

// Name implements Provider.
func (p *MockProvider) Name() string { return "mock" }

// Quotes implements Provider and never returns an error.
func (p *MockProvider) Quotes(_ context.Context, symbols []string) ([]model.Quote, error) {
	out := make([]model.Quote, len(symbols))
	for i, s := range symbols {
		out[i] = p.Quote(s)
	}
	return out, nil
}

// Quote generates one synthetic quote. London symbols (".L" suffix) come
// back in GBP on the LSE; everything else is USD on NASDAQ.
func (p *MockProvider) Quote(symbol string) model.Quote {
	base := mockBase{price: 100, name: symbol}
	currency := model.USD
	exchange := "NASDAQ"

	if strings.HasSuffix(symbol, ".L") {
		currency = model.GBP
		exchange = "LSE"
		if b, ok := mockUKBases[symbol]; ok {
			base = b
		} else {
			base = mockBase{
				price: p.float()*20 + 5,
				name:  strings.TrimSuffix(symbol, ".L") + " PLC",
			}
		}
	} else if b, ok := mockUSBases[symbol]; ok {
		base = b
	}

	jitter := 0.04
	if highVolatilitySymbols[strings.TrimSuffix(symbol, ".L")] {
		jitter = 0.08
	}

	price := base.price + (p.float()-0.5)*base.price*jitter
	changePercent := (p.float() - 0.5) * 3
	previousClose := price / (1 + changePercent/100)
	change := price - previousClose

	return model.Quote{
		Symbol:        symbol,
		Name:          base.name,
		Price:         math.Max(0.01, round2(price)),
		PreviousClose: math.Max(0.01, round2(previousClose)),
		Change:        round2(change),
		ChangePercent: round2(changePercent),
		Currency:      currency,
		Exchange:      exchange,
		MarketState:   "REGULAR",
	}
}

// BasePrice exposes the anchor price for a symbol, shared with the chart
// generator so chart series start near quote levels. Unknown symbols anchor
// at 100.
func BasePrice(symbol string) float64 {
	if b, ok := mockUSBases[symbol]; ok {
		return b.price
	}
	if b, ok := mockUKBases[symbol]; ok {
		return b.price
	}
	if strings.HasSuffix(symbol, ".L") {
		return 25
	}
	return 100
}

func (p *MockProvider) float() float64 {
	if p.rand != nil {
		return p.rand.Float64()
	}
	return rand.Float64()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
