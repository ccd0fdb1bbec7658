package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// yahooHosts are tried in order; query2 is a mirror of query1.
var yahooHosts = []string{
	"https://query1.finance.yahoo.com",
	"https://query2.finance.yahoo.com",
}

// YahooProvider fetches quotes from the Yahoo Finance v7 quote endpoint.
type YahooProvider struct {
	httpClient *http.Client
	hosts      []string
}

// NewYahooProvider creates a Yahoo provider with an 8 second request
// timeout per host.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		hosts:      yahooHosts,
	}
}

// Name implements Provider.
func (p *YahooProvider) Name() string { return "yahoo" }

// yahooQuoteResponse is the subset of the v7 response the dashboard uses.
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []yahooQuoteResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

type yahooQuoteResult struct {
	Symbol                     string  `json:"symbol"`
	ShortName                  string  `json:"shortName"`
	LongName                   string  `json:"longName"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	PostMarketPrice            float64 `json:"postMarketPrice"`
	PreMarketPrice             float64 `json:"preMarketPrice"`
	RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
	RegularMarketChange        float64 `json:"regularMarketChange"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
	Currency                   string  `json:"currency"`
	FullExchangeName           string  `json:"fullExchangeName"`
	MarketState                string  `json:"marketState"`
}

// Quotes implements Provider. Each mirror host is tried before giving up.
func (p *YahooProvider) Quotes(ctx context.Context, symbols []string) ([]model.Quote, error) {
	var lastErr error
	for _, host := range p.hosts {
		quotes, err := p.fetchFrom(ctx, host, symbols)
		if err != nil {
			lastErr = err
			continue
		}
		return quotes, nil
	}
	return nil, fmt.Errorf("all yahoo hosts failed: %w", lastErr)
}

func (p *YahooProvider) fetchFrom(ctx context.Context, host string, symbols []string) ([]model.Quote, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", host, url.QueryEscape(strings.Join(symbols, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo blocks requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://finance.yahoo.com/")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var decoded yahooQuoteResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}
	if decoded.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yahoo error: %s", decoded.QuoteResponse.Error.Description)
	}
	if len(decoded.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("yahoo returned no results")
	}

	quotes := make([]model.Quote, 0, len(decoded.QuoteResponse.Result))
	for _, r := range decoded.QuoteResponse.Result {
		quotes = append(quotes, r.toQuote())
	}
	return quotes, nil
}

func (r yahooQuoteResult) toQuote() model.Quote {
	price := r.RegularMarketPrice
	if price == 0 {
		if r.PostMarketPrice != 0 {
			price = r.PostMarketPrice
		} else if r.PreMarketPrice != 0 {
			price = r.PreMarketPrice
		}
	}

	name := r.ShortName
	if name == "" {
		name = r.LongName
	}
	if name == "" {
		name = r.Symbol
	}

	currency := model.Currency(r.Currency)
	if currency == "" {
		currency = model.USD
	}

	return model.Quote{
		Symbol:        r.Symbol,
		Name:          name,
		Price:         price,
		PreviousClose: r.RegularMarketPreviousClose,
		Change:        r.RegularMarketChange,
		ChangePercent: r.RegularMarketChangePercent,
		Currency:      currency,
		Exchange:      r.FullExchangeName,
		MarketState:   r.MarketState,
	}
}
