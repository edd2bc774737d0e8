package cache

import (
	"time"

	"github.com/Yang0427/stocks/internal/model"
)

// Cache persists fetched daily bars between runs so repeated scans within
// the TTL do not hit the data provider again.
type Cache interface {
	// LoadBars returns the cached bars for a ticker if they were stored
	// within maxAge, or (nil, nil) on a miss or stale entry.
	LoadBars(ticker string, maxAge time.Duration) ([]model.PriceBar, error)
	StoreBars(ticker string, bars []model.PriceBar) error
	Close() error
}
