package chart

import (
	"context"
	"log"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// SeriesProvider fetches a historical series from a live source.
type SeriesProvider interface {
	Name() string
	Series(ctx context.Context, symbol string, timeframe model.Timeframe) ([]model.ChartPoint, error)
}

// Result is a chart series with its provenance and summary statistics.
type Result struct {
	Symbol    string             `json:"symbol"`
	Timeframe model.Timeframe    `json:"timeframe"`
	Points    []model.ChartPoint `json:"chartData"`
	Stats     SeriesStats        `json:"stats"`
	Source    string             `json:"source"`
}

// Service answers chart requests, falling back to a generated series when
// the live provider fails.
type Service struct {
	provider  SeriesProvider
	generator *Generator
}

func NewService(provider SeriesProvider) *Service {
	return &Service{
		provider:  provider,
		generator: NewGenerator(),
	}
}

// Fetch returns the series for one symbol and timeframe. It never fails:
// provider errors degrade to the generated series.
func (s *Service) Fetch(ctx context.Context, symbol string, timeframe model.Timeframe) Result {
	points, err := s.provider.Series(ctx, symbol, timeframe)
	if err == nil && len(points) > 0 {
		return Result{
			Symbol:    symbol,
			Timeframe: timeframe,
			Points:    points,
			Stats:     ComputeStats(points),
			Source:    s.provider.Name(),
		}
	}
	if err != nil {
		log.Printf("chart provider %s failed for %s: %v", s.provider.Name(), symbol, err)
	}

	generated := s.generator.Series(symbol, timeframe)
	return Result{
		Symbol:    symbol,
		Timeframe: timeframe,
		Points:    generated,
		Stats:     ComputeStats(generated),
		Source:    "mock",
	}
}
