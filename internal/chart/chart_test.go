package chart_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/chart"
	"github.com/RahulAr0x/Investment-pro/internal/model"
)

func TestGeneratorSeries(t *testing.T) {
	t.Run("point count per timeframe", func(t *testing.T) {
		tests := []struct {
			timeframe model.Timeframe
			want      int
		}{
			{model.Timeframe1D, 79},
			{model.Timeframe1W, 36},
			{model.Timeframe1M, 23},
			{model.Timeframe3M, 66},
			{model.Timeframe6M, 131},
			{model.Timeframe1Y, 253},
			{model.TimeframeAll, 1001},
		}

		gen := chart.NewSeededGenerator(1)
		for _, tt := range tests {
			t.Run(string(tt.timeframe), func(t *testing.T) {
				points := gen.Series("AAPL", tt.timeframe)
				if len(points) != tt.want {
					t.Errorf("expected %d points, got %d", tt.want, len(points))
				}
			})
		}
	})

	t.Run("prices never dip below half base", func(t *testing.T) {
		gen := chart.NewSeededGenerator(42)
		points := gen.Series("AAPL", model.TimeframeAll)

		floor := 190.0 * 0.5
		for _, p := range points {
			if p.Price < floor {
				t.Fatalf("price %f below floor %f", p.Price, floor)
			}
		}
	})

	t.Run("timestamps ascend and end near now", func(t *testing.T) {
		gen := chart.NewSeededGenerator(3)
		before := time.Now().UnixMilli()
		points := gen.Series("MSFT", model.Timeframe1M)
		after := time.Now().UnixMilli()

		for i := 1; i < len(points); i++ {
			if points[i].Timestamp <= points[i-1].Timestamp {
				t.Fatalf("timestamps not strictly ascending at index %d", i)
			}
		}
		last := points[len(points)-1].Timestamp
		if last < before || last > after {
			t.Errorf("last timestamp %d not within [%d, %d]", last, before, after)
		}
	})

	t.Run("volumes are plausible", func(t *testing.T) {
		gen := chart.NewSeededGenerator(5)
		for _, p := range gen.Series("GOOGL", model.Timeframe1W) {
			if p.Volume < 1000000 || p.Volume > 11000000 {
				t.Fatalf("volume %d outside expected range", p.Volume)
			}
		}
	})

	t.Run("deterministic with same seed", func(t *testing.T) {
		a := chart.NewSeededGenerator(9).Series("TSLA", model.Timeframe1M)
		b := chart.NewSeededGenerator(9).Series("TSLA", model.Timeframe1M)

		if len(a) != len(b) {
			t.Fatalf("length mismatch %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].Price != b[i].Price {
				t.Fatalf("price mismatch at %d: %f vs %f", i, a[i].Price, b[i].Price)
			}
		}
	})
}

func TestComputeStats(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		if got := chart.ComputeStats(nil); got != (chart.SeriesStats{}) {
			t.Errorf("expected zero stats, got %+v", got)
		}
	})

	t.Run("known series", func(t *testing.T) {
		points := []model.ChartPoint{
			{Price: 100},
			{Price: 110},
			{Price: 105},
			{Price: 120},
		}

		got := chart.ComputeStats(points)

		if got.Open != 100 || got.Close != 120 {
			t.Errorf("open/close = %f/%f, want 100/120", got.Open, got.Close)
		}
		if got.High != 120 || got.Low != 100 {
			t.Errorf("high/low = %f/%f, want 120/100", got.High, got.Low)
		}
		if !approxEqual(got.Mean, 108.75, 1e-9) {
			t.Errorf("mean = %f, want 108.75", got.Mean)
		}
		if !approxEqual(got.Change, 20, 1e-9) {
			t.Errorf("change = %f, want 20", got.Change)
		}
		if !approxEqual(got.ChangePct, 20, 1e-9) {
			t.Errorf("changePct = %f, want 20", got.ChangePct)
		}
		if got.StdDev <= 0 {
			t.Errorf("stdDev = %f, want positive", got.StdDev)
		}
	})

	t.Run("single point has zero spread", func(t *testing.T) {
		got := chart.ComputeStats([]model.ChartPoint{{Price: 50}})

		if got.StdDev != 0 {
			t.Errorf("stdDev = %f, want 0", got.StdDev)
		}
		if got.Change != 0 || got.ChangePct != 0 {
			t.Errorf("change = %f/%f, want 0/0", got.Change, got.ChangePct)
		}
	})
}

type stubSeriesProvider struct {
	points []model.ChartPoint
	err    error
}

func (s *stubSeriesProvider) Name() string { return "stub" }

func (s *stubSeriesProvider) Series(_ context.Context, _ string, _ model.Timeframe) ([]model.ChartPoint, error) {
	return s.points, s.err
}

func TestServiceFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("provider series wins", func(t *testing.T) {
		points := []model.ChartPoint{{Timestamp: 1, Price: 100}, {Timestamp: 2, Price: 101}}
		svc := chart.NewService(&stubSeriesProvider{points: points})

		result := svc.Fetch(ctx, "AAPL", model.Timeframe1D)

		if result.Source != "stub" {
			t.Errorf("expected source stub, got %s", result.Source)
		}
		if len(result.Points) != 2 {
			t.Errorf("expected 2 points, got %d", len(result.Points))
		}
		if result.Stats.Close != 101 {
			t.Errorf("expected close 101, got %f", result.Stats.Close)
		}
	})

	t.Run("provider error falls back to generated series", func(t *testing.T) {
		svc := chart.NewService(&stubSeriesProvider{err: errors.New("down")})

		result := svc.Fetch(ctx, "AAPL", model.Timeframe1M)

		if result.Source != "mock" {
			t.Errorf("expected source mock, got %s", result.Source)
		}
		if len(result.Points) != 23 {
			t.Errorf("expected 23 generated points, got %d", len(result.Points))
		}
	})

	t.Run("empty provider series falls back", func(t *testing.T) {
		svc := chart.NewService(&stubSeriesProvider{})

		result := svc.Fetch(ctx, "VOD.L", model.Timeframe1W)

		if result.Source != "mock" {
			t.Errorf("expected source mock, got %s", result.Source)
		}
	})
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
