package chart

import (
	"math"
	"math/rand"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/quotes"
)

// timeframeShape fixes the point count, candle spacing and per-step
// volatility of a generated series.
type timeframeShape struct {
	intervals  int
	intervalMs int64
	volatility float64
}

func shapeFor(timeframe model.Timeframe) timeframeShape {
	const day = 24 * 60 * 60 * 1000
	switch timeframe {
	case model.Timeframe1D:
		return timeframeShape{78, 5 * 60 * 1000, 0.002}
	case model.Timeframe1W:
		return timeframeShape{35, 30 * 60 * 1000, 0.005}
	case model.Timeframe1M:
		return timeframeShape{22, day, 0.01}
	case model.Timeframe3M:
		return timeframeShape{65, day, 0.01}
	case model.Timeframe6M:
		return timeframeShape{130, day, 0.01}
	case model.Timeframe1Y:
		return timeframeShape{252, day, 0.01}
	case model.TimeframeAll:
		return timeframeShape{1000, day, 0.01}
	default:
		return timeframeShape{100, 60 * 60 * 1000, 0.01}
	}
}

// Generator produces a plausible random-walk series for a symbol, anchored
// on the same base prices the mock quote provider uses so the chart and the
// quote badge agree.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewSeededGenerator returns a generator with deterministic output, for
// tests.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

func (g *Generator) random() float64 {
	if g.rng != nil {
		return g.rng.Float64()
	}
	return rand.Float64()
}

// Series builds intervals+1 points ending now. The walk never dips below
// half the symbol's base price.
func (g *Generator) Series(symbol string, timeframe model.Timeframe) []model.ChartPoint {
	shape := shapeFor(timeframe)
	basePrice := quotes.BasePrice(symbol)
	now := g.now().UnixMilli()

	points := make([]model.ChartPoint, 0, shape.intervals+1)
	price := basePrice

	for i := shape.intervals; i >= 0; i-- {
		ts := now - int64(i)*shape.intervalMs

		trend := (g.random() - 0.5) * 0.001
		noise := (g.random() - 0.5) * shape.volatility
		price = price * (1 + trend + noise)
		price = math.Max(price, basePrice*0.5)

		points = append(points, model.ChartPoint{
			Timestamp: ts,
			Date:      time.UnixMilli(ts).UTC(),
			Price:     math.Round(price*100) / 100,
			Volume:    int64(g.random()*10000000) + 1000000,
		})
	}
	return points
}
