package collector

import (
	"context"
	"time"

	"TradingAdvisor/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series *model.PriceSeries
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, symbol string, period model.Period) (*model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		return m.Series, nil
	}
	series, err := model.NewPriceSeries(symbol, GenerateBars(100, periodDays(period)))
	if err != nil {
		return nil, err
	}
	return series, nil
}

// GenerateBars builds a deterministic upward-drifting daily series for
// development runs without network access.
func GenerateBars(basePrice float64, count int) []model.Bar {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

func periodDays(period model.Period) int {
	switch period {
	case model.Period1Mo:
		return 21
	case model.Period3Mo:
		return 63
	case model.Period6Mo:
		return 126
	case model.Period1Y:
		return 252
	case model.Period2Y:
		return 504
	default:
		return 1260
	}
}
