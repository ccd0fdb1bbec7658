package metrics

import (
	"math"

	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/valuation"
)

// Fixed model constants. BenchmarkReturn is reserved configuration: it is
// defined for parity with the dashboard's settings surface but no current
// formula consumes it.
const (
	RiskFreeRate    = 0.04
	BenchmarkReturn = 0.10
)

// AssetMetrics is the per-asset risk and valuation record.
type AssetMetrics struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	CurrentValue     float64 `json:"currentValue"`
	CostBasis        float64 `json:"costBasis"`
	UnrealizedPnL    float64 `json:"unrealizedPnL"`
	UnrealizedPnLPct float64 `json:"unrealizedPnLPercent"`
	DayChange        float64 `json:"dayChange"`
	DayChangePct     float64 `json:"dayChangePercent"`
	Weight           float64 `json:"weight"`
	Volatility       float64 `json:"volatility"`
	Beta             float64 `json:"beta"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	DividendYield    float64 `json:"dividendYield"`
}

// PortfolioMetrics aggregates asset metrics into portfolio-level figures.
type PortfolioMetrics struct {
	TotalValue        float64            `json:"totalValue"`
	TotalCost         float64            `json:"totalCost"`
	TotalPnL          float64            `json:"totalPnL"`
	TotalPnLPct       float64            `json:"totalPnLPercent"`
	DayChange         float64            `json:"dayChange"`
	DayChangePct      float64            `json:"dayChangePercent"`
	AssetWeights      map[string]float64 `json:"assetWeights"`
	SectorWeights     map[string]float64 `json:"sectorWeights"`
	GeographicWeights map[string]float64 `json:"geographicWeights"`
	Volatility        float64            `json:"volatility"`
	SharpeRatio       float64            `json:"sharpeRatio"`
	MaxDrawdown       float64            `json:"maxDrawdown"`
	Beta              float64            `json:"beta"`
}

// Calculator computes risk and allocation metrics over one refresh snapshot.
// Construct a new Calculator per snapshot; it holds no mutable state.
type Calculator struct {
	holdings []model.Holding
	quotes   map[string]model.Quote
	fx       model.FxRates
	profiles map[string]AssetProfile
}

// NewCalculator creates a Calculator over the given snapshot using the
// built-in profile table.
func NewCalculator(holdings []model.Holding, quotes map[string]model.Quote, fx model.FxRates) *Calculator {
	return NewCalculatorWithProfiles(holdings, quotes, fx, defaultProfiles)
}

// NewCalculatorWithProfiles creates a Calculator with an explicit profile
// table, for callers that load classification metadata from configuration.
func NewCalculatorWithProfiles(holdings []model.Holding, quotes map[string]model.Quote, fx model.FxRates, profiles map[string]AssetProfile) *Calculator {
	return &Calculator{
		holdings: holdings,
		quotes:   quotes,
		fx:       fx,
		profiles: profiles,
	}
}

// Profile returns the metadata record for a symbol, falling back to
// DefaultProfile for unprofiled symbols.
func (c *Calculator) Profile(symbol string) AssetProfile {
	if p, ok := c.profiles[symbol]; ok {
		return p
	}
	return DefaultProfile
}

// AssetMetrics computes the per-asset records, one per holding, in holding
// order. Weights are percentages of total portfolio value; when the total
// value is not positive every weight is zero.
func (c *Calculator) AssetMetrics() []AssetMetrics {
	assets := make([]AssetMetrics, 0, len(c.holdings))

	var totalValue float64
	for _, h := range c.holdings {
		q := c.quotes[h.Symbol]

		currentPrice := 0.0
		if q.Price > 0 {
			currentPrice = q.Price
		}
		previousClose := q.PreviousClose
		if previousClose <= 0 {
			previousClose = currentPrice
		}

		currentValue := valuation.ConvertToEUR(currentPrice*h.Qty, h.Currency, c.fx)
		costBasis := valuation.ConvertToEUR(h.AvgPrice*h.Qty, h.Currency, c.fx)

		unrealizedPnL := currentValue - costBasis
		unrealizedPnLPct := 0.0
		if costBasis > 0 {
			unrealizedPnLPct = unrealizedPnL / costBasis * 100
		}

		dayChangePerUnit := currentPrice - previousClose
		dayChange := valuation.ConvertToEUR(dayChangePerUnit*h.Qty, h.Currency, c.fx)
		dayChangePct := 0.0
		if previousClose > 0 {
			dayChangePct = dayChangePerUnit / previousClose * 100
		}

		profile := c.Profile(h.Symbol)

		assets = append(assets, AssetMetrics{
			Symbol:           h.Symbol,
			Name:             h.Name,
			CurrentValue:     currentValue,
			CostBasis:        costBasis,
			UnrealizedPnL:    unrealizedPnL,
			UnrealizedPnLPct: unrealizedPnLPct,
			DayChange:        dayChange,
			DayChangePct:     dayChangePct,
			Volatility:       profile.Volatility,
			Beta:             profile.Beta,
			SharpeRatio:      sharpeRatio(unrealizedPnLPct/100, profile.Volatility),
			DividendYield:    profile.DividendYield,
		})
		totalValue += currentValue
	}

	if totalValue > 0 {
		for i := range assets {
			assets[i].Weight = assets[i].CurrentValue / totalValue * 100
		}
	}

	return assets
}

// PortfolioMetrics computes portfolio-level valuation, allocation and risk
// figures from the snapshot.
//
// Portfolio volatility is the variance-only approximation
// sqrt(Σ (w_i/100)² · σ_i²): it ignores cross-asset covariance entirely and
// therefore understates true portfolio risk. Max drawdown is likewise a
// proxy, the worst single-asset unrealized return, not a peak-to-trough
// series drawdown. Both simplifications are part of the contract.
func (c *Calculator) PortfolioMetrics() PortfolioMetrics {
	assets := c.AssetMetrics()

	var totalValue, totalCost, dayChange float64
	for _, a := range assets {
		totalValue += a.CurrentValue
		totalCost += a.CostBasis
		dayChange += a.DayChange
	}

	totalPnL := totalValue - totalCost
	totalPnLPct := 0.0
	if totalCost > 0 {
		totalPnLPct = totalPnL / totalCost * 100
	}

	dayChangePct := 0.0
	if totalValue > 0 {
		dayChangePct = dayChange / (totalValue - dayChange) * 100
	}

	assetWeights := make(map[string]float64, len(assets))
	sectorWeights := make(map[string]float64)
	geographicWeights := make(map[string]float64)

	for _, a := range assets {
		assetWeights[a.Symbol] = a.Weight
		profile := c.Profile(a.Symbol)
		sectorWeights[profile.Sector] += a.Weight
		geographicWeights[profile.Region] += a.Weight
	}

	volatility := portfolioVolatility(assets)

	return PortfolioMetrics{
		TotalValue:        totalValue,
		TotalCost:         totalCost,
		TotalPnL:          totalPnL,
		TotalPnLPct:       totalPnLPct,
		DayChange:         dayChange,
		DayChangePct:      dayChangePct,
		AssetWeights:      assetWeights,
		SectorWeights:     sectorWeights,
		GeographicWeights: geographicWeights,
		Volatility:        volatility,
		SharpeRatio:       sharpeRatio(totalPnLPct/100, volatility),
		MaxDrawdown:       maxDrawdown(assets),
		Beta:              portfolioBeta(assets),
	}
}

// sharpeRatio is (return - risk free rate) / volatility, zero when
// volatility is zero.
func sharpeRatio(returnRate, volatility float64) float64 {
	if volatility == 0 {
		return 0
	}
	return (returnRate - RiskFreeRate) / volatility
}

func portfolioVolatility(assets []AssetMetrics) float64 {
	var variance float64
	for _, a := range assets {
		w := a.Weight / 100
		variance += w * w * a.Volatility * a.Volatility
	}
	return math.Sqrt(variance)
}

// maxDrawdown approximates drawdown as the worst single-asset unrealized
// return, floored at zero and expressed as a fraction.
func maxDrawdown(assets []AssetMetrics) float64 {
	worst := 0.0
	for _, a := range assets {
		if a.UnrealizedPnLPct < worst {
			worst = a.UnrealizedPnLPct
		}
	}
	return math.Abs(worst) / 100
}

func portfolioBeta(assets []AssetMetrics) float64 {
	var beta float64
	for _, a := range assets {
		beta += a.Weight / 100 * a.Beta
	}
	return beta
}
