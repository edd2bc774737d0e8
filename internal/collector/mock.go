package collector

import (
	"time"

	"github.com/Yang0427/stocks/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price        float64
	BarsByTicker map[string][]model.PriceBar
	MetaByTicker map[string]*model.TickerMeta
	BarsErr      error
	MetaErr      error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(ticker string, days int) ([]model.PriceBar, error) {
	if m.BarsErr != nil {
		return nil, m.BarsErr
	}
	if bars, ok := m.BarsByTicker[ticker]; ok {
		return bars, nil
	}
	return GenerateBars(m.Price, days), nil
}

func (m *MockFetcher) FetchMeta(ticker string) (*model.TickerMeta, error) {
	if m.MetaErr != nil {
		return nil, m.MetaErr
	}
	if meta, ok := m.MetaByTicker[ticker]; ok {
		return meta, nil
	}
	return &model.TickerMeta{Price: m.Price}, nil
}

// GenerateBars builds a gently drifting daily series around basePrice.
func GenerateBars(basePrice float64, count int) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
