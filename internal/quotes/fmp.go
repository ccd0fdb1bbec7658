package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// FMPProvider fetches quotes from the Financial Modeling Prep free tier.
// FMP only covers US listings, so quotes come back as USD.
type FMPProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewFMPProvider creates an FMP provider using the demo key.
func NewFMPProvider() *FMPProvider {
	return &FMPProvider{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		baseURL:    "https://financialmodelingprep.com",
		apiKey:     "demo",
	}
}

// Name implements Provider.
func (p *FMPProvider) Name() string { return "financial modeling prep" }

type fmpQuote struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	PreviousClose     float64 `json:"previousClose"`
	Change            float64 `json:"change"`
	ChangesPercentage float64 `json:"changesPercentage"`
	Exchange          string  `json:"exchange"`
}

// Quotes implements Provider.
func (p *FMPProvider) Quotes(ctx context.Context, symbols []string) ([]model.Quote, error) {
	endpoint := fmt.Sprintf("%s/api/v3/quote/%s?apikey=%s",
		p.baseURL, url.PathEscape(strings.Join(symbols, ",")), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fmp returned HTTP %d", resp.StatusCode)
	}

	var decoded []fmpQuote
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("fmp returned no data")
	}

	quotes := make([]model.Quote, 0, len(decoded))
	for _, r := range decoded {
		name := r.Name
		if name == "" {
			name = r.Symbol
		}
		quotes = append(quotes, model.Quote{
			Symbol:        r.Symbol,
			Name:          name,
			Price:         r.Price,
			PreviousClose: r.PreviousClose,
			Change:        r.Change,
			ChangePercent: r.ChangesPercentage,
			Currency:      model.USD,
			Exchange:      r.Exchange,
			MarketState:   "REGULAR",
		})
	}
	return quotes, nil
}
