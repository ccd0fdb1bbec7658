package chart

import (
	"github.com/montanaflynn/stats"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// SeriesStats summarizes a price series for the chart header.
type SeriesStats struct {
	Open      float64 `json:"open"`
	Close     float64 `json:"close"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"stdDev"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"changePct"`
}

// ComputeStats derives summary statistics from a series. An empty series
// yields the zero value.
func ComputeStats(points []model.ChartPoint) SeriesStats {
	if len(points) == 0 {
		return SeriesStats{}
	}

	prices := make(stats.Float64Data, len(points))
	for i, p := range points {
		prices[i] = p.Price
	}

	// These error only on empty input, which is excluded above.
	high, _ := stats.Max(prices)
	low, _ := stats.Min(prices)
	mean, _ := stats.Mean(prices)
	stdDev, _ := stats.StandardDeviationSample(prices)
	if len(prices) < 2 {
		stdDev = 0
	}

	open := points[0].Price
	closePrice := points[len(points)-1].Price
	change := closePrice - open

	var changePct float64
	if open != 0 {
		changePct = change / open * 100
	}

	return SeriesStats{
		Open:      open,
		Close:     closePrice,
		High:      high,
		Low:       low,
		Mean:      mean,
		StdDev:    stdDev,
		Change:    change,
		ChangePct: changePct,
	}
}
