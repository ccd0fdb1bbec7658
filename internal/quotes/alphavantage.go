package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// alphaVantageMaxSymbols caps how many symbols are queried per fetch; the
// free tier rate limits aggressively and GLOBAL_QUOTE is one request per
// symbol.
const alphaVantageMaxSymbols = 3

// AlphaVantageProvider fetches quotes from the Alpha Vantage GLOBAL_QUOTE
// endpoint, one request per symbol, fanned out concurrently.
type AlphaVantageProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewAlphaVantageProvider creates an Alpha Vantage provider. An empty key
// falls back to the demo key.
func NewAlphaVantageProvider(apiKey string) *AlphaVantageProvider {
	if apiKey == "" {
		apiKey = "demo"
	}
	return &AlphaVantageProvider{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		baseURL:    "https://www.alphavantage.co",
		apiKey:     apiKey,
	}
}

// Name implements Provider.
func (p *AlphaVantageProvider) Name() string { return "alpha vantage" }

type alphaVantageEnvelope struct {
	GlobalQuote map[string]string `json:"Global Quote"`
}

// Quotes implements Provider. Only the first alphaVantageMaxSymbols symbols
// are queried; per-symbol failures are tolerated as long as at least one
// quote comes back.
func (p *AlphaVantageProvider) Quotes(ctx context.Context, symbols []string) ([]model.Quote, error) {
	if len(symbols) > alphaVantageMaxSymbols {
		symbols = symbols[:alphaVantageMaxSymbols]
	}

	var (
		mu     sync.Mutex
		quotes []model.Quote
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(alphaVantageMaxSymbols)

	for _, symbol := range symbols {
		g.Go(func() error {
			q, err := p.fetchOne(ctx, symbol)
			if err != nil {
				// Skip the symbol; the chain backfills it.
				return nil
			}
			mu.Lock()
			quotes = append(quotes, q)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("alpha vantage returned no quotes")
	}
	return quotes, nil
}

func (p *AlphaVantageProvider) fetchOne(ctx context.Context, symbol string) (model.Quote, error) {
	endpoint := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		p.baseURL, url.QueryEscape(symbol), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Quote{}, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return model.Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Quote{}, fmt.Errorf("alpha vantage returned HTTP %d", resp.StatusCode)
	}

	var decoded alphaVantageEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return model.Quote{}, err
	}
	if len(decoded.GlobalQuote) == 0 {
		return model.Quote{}, fmt.Errorf("no global quote for %s", symbol)
	}

	price := parseFloatField(decoded.GlobalQuote, "05. price")
	prevClose := parseFloatField(decoded.GlobalQuote, "08. previous close")
	change := parseFloatField(decoded.GlobalQuote, "09. change")
	changePct := parsePercentField(decoded.GlobalQuote, "10. change percent")

	if change == 0 {
		change = price - prevClose
	}

	return model.Quote{
		Symbol:        symbol,
		Name:          symbol,
		Price:         price,
		PreviousClose: prevClose,
		Change:        change,
		ChangePercent: changePct,
		Currency:      model.USD,
		Exchange:      "NASDAQ",
		MarketState:   "REGULAR",
	}, nil
}

func parseFloatField(fields map[string]string, key string) float64 {
	v, err := strconv.ParseFloat(fields[key], 64)
	if err != nil {
		return 0
	}
	return v
}

func parsePercentField(fields map[string]string, key string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(fields[key], "%"), 64)
	if err != nil {
		return 0
	}
	return v
}
