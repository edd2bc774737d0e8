package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yang0427/stocks/internal/model"
)

// memCache is an in-memory Cache for decorator tests.
type memCache struct {
	bars   map[string][]model.PriceBar
	stored map[string]time.Time
}

func newMemCache() *memCache {
	return &memCache{bars: map[string][]model.PriceBar{}, stored: map[string]time.Time{}}
}

func (m *memCache) LoadBars(ticker string, maxAge time.Duration) ([]model.PriceBar, error) {
	at, ok := m.stored[ticker]
	if !ok || time.Since(at) > maxAge {
		return nil, nil
	}
	return m.bars[ticker], nil
}

func (m *memCache) StoreBars(ticker string, bars []model.PriceBar) error {
	m.bars[ticker] = bars
	m.stored[ticker] = time.Now()
	return nil
}

func (m *memCache) Close() error { return nil }

func TestCachedFetcher_StoresOnMiss(t *testing.T) {
	mc := newMemCache()
	cf := NewCachedFetcher(&MockFetcher{Price: 10}, mc, time.Hour)

	bars, err := cf.FetchDailyBars("AAPL", 250)
	require.NoError(t, err)
	assert.Len(t, bars, 250)
	assert.Len(t, mc.bars["AAPL"], 250, "miss must populate the cache")
}

func TestCachedFetcher_ServesFreshEntry(t *testing.T) {
	mc := newMemCache()
	cached := GenerateBars(99, 250)
	require.NoError(t, mc.StoreBars("AAPL", cached))

	// Upstream would produce a different base price; the cached series wins.
	cf := NewCachedFetcher(&MockFetcher{Price: 10}, mc, time.Hour)
	bars, err := cf.FetchDailyBars("AAPL", 250)
	require.NoError(t, err)
	require.Len(t, bars, 250)
	assert.Equal(t, cached[len(cached)-1].Close, bars[len(bars)-1].Close)
}

func TestCachedFetcher_TrimsCachedSeries(t *testing.T) {
	mc := newMemCache()
	require.NoError(t, mc.StoreBars("AAPL", GenerateBars(10, 300)))

	cf := NewCachedFetcher(&MockFetcher{Price: 10}, mc, time.Hour)
	bars, err := cf.FetchDailyBars("AAPL", 250)
	require.NoError(t, err)
	assert.Len(t, bars, 250)
}
