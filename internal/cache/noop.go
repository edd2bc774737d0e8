package cache

import (
	"time"

	"github.com/Yang0427/stocks/internal/model"
)

// NoopCache is a no-op implementation used when SQLite is not configured.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) LoadBars(_ string, _ time.Duration) ([]model.PriceBar, error) { return nil, nil }
func (n *NoopCache) StoreBars(_ string, _ []model.PriceBar) error                 { return nil }
func (n *NoopCache) Close() error                                                 { return nil }
