package forex

import (
	"context"
	"math/rand"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// MockProvider generates plausible EUR rates so the dashboard keeps working
// when every real forex source is down. Rates jitter inside a narrow band
// around recent market levels.
type MockProvider struct {
	rng *rand.Rand
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// NewSeededMockProvider returns a mock with deterministic jitter, for tests.
func NewSeededMockProvider(seed int64) *MockProvider {
	return &MockProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *MockProvider) Name() string { return "mock" }

func (p *MockProvider) Rates(_ context.Context, _ model.Currency) (Rates, error) {
	return Rates{
		USD: model.FallbackUSDRate + p.jitter(0.04), // 1.06 - 1.10
		GBP: model.FallbackGBPRate + p.jitter(0.02), // 0.86 - 0.88
		INR: 90.0 + p.jitter(3.0),                   // 88.5 - 91.5
	}, nil
}

func (p *MockProvider) jitter(span float64) float64 {
	if p.rng != nil {
		return (p.rng.Float64() - 0.5) * span
	}
	return (rand.Float64() - 0.5) * span
}
