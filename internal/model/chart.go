package model

import "time"

// Timeframe selects the span and resolution of a chart series.
type Timeframe string

// Supported chart timeframes.
const (
	Timeframe1D  Timeframe = "1D"
	Timeframe1W  Timeframe = "1W"
	Timeframe1M  Timeframe = "1M"
	Timeframe3M  Timeframe = "3M"
	Timeframe6M  Timeframe = "6M"
	Timeframe1Y  Timeframe = "1Y"
	TimeframeAll Timeframe = "ALL"
)

// ValidTimeframe reports whether tf is one of the supported timeframes.
func ValidTimeframe(tf Timeframe) bool {
	switch tf {
	case Timeframe1D, Timeframe1W, Timeframe1M, Timeframe3M, Timeframe6M, Timeframe1Y, TimeframeAll:
		return true
	}
	return false
}

// ChartPoint is a single observation in a price series.
type ChartPoint struct {
	Timestamp int64     `json:"timestamp"`
	Date      time.Time `json:"date"`
	Price     float64   `json:"price"`
	Volume    int64     `json:"volume,omitempty"`
}
