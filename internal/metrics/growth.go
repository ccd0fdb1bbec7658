package metrics

import "math"

// GrowthMetrics describes portfolio growth from an initial deposit over a
// time horizon. Annualized return and CAGR are both percentages.
type GrowthMetrics struct {
	InitialValue        float64 `json:"initialValue"`
	CurrentValue        float64 `json:"currentValue"`
	TotalReturn         float64 `json:"totalReturn"`
	TotalReturnPct      float64 `json:"totalReturnPercent"`
	AnnualizedReturn    float64 `json:"annualizedReturn"`
	CAGR                float64 `json:"cagr"`
	TimeHorizonYears    float64 `json:"timeHorizonYears"`
	AverageAnnualGrowth float64 `json:"averageAnnualGrowth"`
}

// GrowthMetrics computes growth figures for the snapshot's current total
// value against an initial deposit. A non-positive time horizon defines the
// annualized return as zero rather than feeding the exponent a division by
// zero.
func (c *Calculator) GrowthMetrics(initialValue, timeHorizonYears float64) GrowthMetrics {
	currentValue := c.PortfolioMetrics().TotalValue
	return Growth(initialValue, currentValue, timeHorizonYears)
}

// Growth computes growth figures for arbitrary values, shared by the
// Calculator method and callers that already hold a total.
func Growth(initialValue, currentValue, timeHorizonYears float64) GrowthMetrics {
	totalReturn := currentValue - initialValue
	totalReturnPct := 0.0
	if initialValue > 0 {
		totalReturnPct = totalReturn / initialValue * 100
	}

	annualized := 0.0
	if timeHorizonYears > 0 && initialValue > 0 {
		annualized = math.Pow(currentValue/initialValue, 1/timeHorizonYears) - 1
	}

	return GrowthMetrics{
		InitialValue:        initialValue,
		CurrentValue:        currentValue,
		TotalReturn:         totalReturn,
		TotalReturnPct:      totalReturnPct,
		AnnualizedReturn:    annualized * 100,
		CAGR:                annualized * 100,
		TimeHorizonYears:    timeHorizonYears,
		AverageAnnualGrowth: totalReturnPct / math.Max(timeHorizonYears, 1),
	}
}
