// Package chart serves historical price series per timeframe, from Yahoo
// Finance when reachable and a generated random walk otherwise.
package chart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// ErrNoChartData is returned when Yahoo responds without a usable series.
var ErrNoChartData = errors.New("no chart data in response")

// YahooProvider fetches historical candles from the Yahoo v8 chart endpoint.
type YahooProvider struct {
	httpClient *http.Client
	baseURL    string
}

func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://query1.finance.yahoo.com",
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// yahooRange maps a timeframe onto the lookback window and candle interval
// Yahoo expects.
func yahooRange(timeframe model.Timeframe, now time.Time) (period1 int64, interval string) {
	end := now.Unix()
	switch timeframe {
	case model.Timeframe1D:
		return end - 24*60*60, "5m"
	case model.Timeframe1W:
		return end - 7*24*60*60, "30m"
	case model.Timeframe1M:
		return end - 30*24*60*60, "1d"
	case model.Timeframe3M:
		return end - 90*24*60*60, "1d"
	case model.Timeframe6M:
		return end - 180*24*60*60, "1d"
	case model.Timeframe1Y:
		return end - 365*24*60*60, "1d"
	case model.TimeframeAll:
		return end - 5*365*24*60*60, "1wk"
	default:
		return end - 24*60*60, "5m"
	}
}

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// Series fetches the price history for one symbol. Candles with a missing
// close are dropped.
func (p *YahooProvider) Series(ctx context.Context, symbol string, timeframe model.Timeframe) ([]model.ChartPoint, error) {
	now := time.Now()
	period1, interval := yahooRange(timeframe, now)

	url := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s",
		p.baseURL, symbol, period1, now.Unix(), interval)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building yahoo chart request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching yahoo chart: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo chart returned status %d", resp.StatusCode)
	}

	var parsed yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding yahoo chart response: %w", err)
	}

	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, ErrNoChartData
	}

	result := parsed.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	points := make([]model.ChartPoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		price := quote.Close[i]
		if price <= 0 {
			continue
		}
		var volume int64
		if i < len(quote.Volume) {
			volume = quote.Volume[i]
		}
		points = append(points, model.ChartPoint{
			Timestamp: ts * 1000,
			Date:      time.Unix(ts, 0).UTC(),
			Price:     math.Round(price*100) / 100,
			Volume:    volume,
		})
	}

	if len(points) == 0 {
		return nil, ErrNoChartData
	}
	return points, nil
}
