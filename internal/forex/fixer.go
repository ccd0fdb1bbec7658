package forex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// FixerProvider fetches rates from fixer.io.
type FixerProvider struct {
	httpClient *http.Client
	baseURL    string
}

func NewFixerProvider() *FixerProvider {
	return &FixerProvider{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		baseURL:    "https://api.fixer.io",
	}
}

func (p *FixerProvider) Name() string { return "fixer.io" }

type fixerResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (p *FixerProvider) Rates(ctx context.Context, base model.Currency) (Rates, error) {
	url := fmt.Sprintf("%s/latest?base=%s&symbols=USD,GBP,INR", p.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Rates{}, fmt.Errorf("building fixer request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Rates{}, fmt.Errorf("fetching fixer rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rates{}, fmt.Errorf("fixer returned status %d", resp.StatusCode)
	}

	var parsed fixerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Rates{}, fmt.Errorf("decoding fixer response: %w", err)
	}

	return Rates{
		USD: parsed.Rates["USD"],
		GBP: parsed.Rates["GBP"],
		INR: parsed.Rates["INR"],
	}, nil
}
