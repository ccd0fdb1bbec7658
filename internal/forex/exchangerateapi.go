package forex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// ExchangeRateAPIProvider fetches rates from exchangerate-api.com. Free tier,
// no key required.
type ExchangeRateAPIProvider struct {
	httpClient *http.Client
	baseURL    string
}

func NewExchangeRateAPIProvider() *ExchangeRateAPIProvider {
	return &ExchangeRateAPIProvider{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		baseURL:    "https://api.exchangerate-api.com",
	}
}

func (p *ExchangeRateAPIProvider) Name() string { return "exchangerate-api.com" }

type exchangeRateAPIResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (p *ExchangeRateAPIProvider) Rates(ctx context.Context, base model.Currency) (Rates, error) {
	url := fmt.Sprintf("%s/v4/latest/%s", p.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Rates{}, fmt.Errorf("building exchangerate-api request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Rates{}, fmt.Errorf("fetching exchangerate-api rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rates{}, fmt.Errorf("exchangerate-api returned status %d", resp.StatusCode)
	}

	var parsed exchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Rates{}, fmt.Errorf("decoding exchangerate-api response: %w", err)
	}

	return Rates{
		USD: parsed.Rates["USD"],
		GBP: parsed.Rates["GBP"],
		INR: parsed.Rates["INR"],
	}, nil
}
