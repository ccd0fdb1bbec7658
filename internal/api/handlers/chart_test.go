package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RahulAr0x/Investment-pro/internal/chart"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/testutil"
)

// offlineProvider always fails, pushing the service onto the generated
// series so tests stay off the network.
type offlineProvider struct{}

func (offlineProvider) Name() string { return "offline" }

func (offlineProvider) Series(ctx context.Context, symbol string, timeframe model.Timeframe) ([]model.ChartPoint, error) {
	return nil, errors.New("offline")
}

func TestChartHandler(t *testing.T) {
	handler := NewChartHandler(chart.NewService(offlineProvider{}))

	t.Run("returns a series for the default timeframe", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/chart", map[string]string{
			"symbol": "AAPL",
		})
		w := httptest.NewRecorder()

		handler.Series(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var result chart.Result
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.Timeframe != model.Timeframe1D {
			t.Errorf("Expected timeframe 1D, got %s", result.Timeframe)
		}
		if len(result.Points) == 0 {
			t.Error("Expected a non-empty series")
		}
		if result.Source != "mock" {
			t.Errorf("Expected source mock, got %s", result.Source)
		}
	})

	t.Run("honours an explicit timeframe", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/chart", map[string]string{
			"symbol":    "TSLA",
			"timeframe": "1M",
		})
		w := httptest.NewRecorder()

		handler.Series(w, req)

		var result chart.Result
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&result)

		if result.Timeframe != model.Timeframe1M {
			t.Errorf("Expected timeframe 1M, got %s", result.Timeframe)
		}
	})

	t.Run("returns 400 when symbol is missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/chart", nil)
		w := httptest.NewRecorder()

		handler.Series(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for an unknown timeframe", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/chart", map[string]string{
			"symbol":    "AAPL",
			"timeframe": "2W",
		})
		w := httptest.NewRecorder()

		handler.Series(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
