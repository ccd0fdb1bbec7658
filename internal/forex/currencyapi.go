package forex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// CurrencyAPIProvider fetches rates from currencyapi.com using the public
// demo key.
type CurrencyAPIProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewCurrencyAPIProvider() *CurrencyAPIProvider {
	return &CurrencyAPIProvider{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		baseURL:    "https://api.currencyapi.com",
		apiKey:     "cur_live_demo",
	}
}

func (p *CurrencyAPIProvider) Name() string { return "currencyapi.com" }

type currencyAPIResponse struct {
	Data map[string]struct {
		Value float64 `json:"value"`
	} `json:"data"`
}

func (p *CurrencyAPIProvider) Rates(ctx context.Context, base model.Currency) (Rates, error) {
	url := fmt.Sprintf("%s/v3/latest?apikey=%s&base_currency=%s&currencies=USD,GBP,INR",
		p.baseURL, p.apiKey, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Rates{}, fmt.Errorf("building currencyapi request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Rates{}, fmt.Errorf("fetching currencyapi rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rates{}, fmt.Errorf("currencyapi returned status %d", resp.StatusCode)
	}

	var parsed currencyAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Rates{}, fmt.Errorf("decoding currencyapi response: %w", err)
	}

	return Rates{
		USD: parsed.Data["USD"].Value,
		GBP: parsed.Data["GBP"].Value,
		INR: parsed.Data["INR"].Value,
	}, nil
}
