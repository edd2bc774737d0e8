package collector

import (
	"log"
	"time"

	"github.com/Yang0427/stocks/internal/cache"
	"github.com/Yang0427/stocks/internal/model"
)

// CachedFetcher serves daily bars from the cache when they are fresh enough,
// delegating to the underlying fetcher otherwise. Metadata is always fetched
// live; it is a single cheap call and changes intraday.
type CachedFetcher struct {
	Fetcher Fetcher
	Cache   cache.Cache
	TTL     time.Duration
}

func NewCachedFetcher(f Fetcher, c cache.Cache, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{Fetcher: f, Cache: c, TTL: ttl}
}

func (c *CachedFetcher) Name() string { return c.Fetcher.Name() + "+cache" }

func (c *CachedFetcher) FetchDailyBars(ticker string, days int) ([]model.PriceBar, error) {
	cached, err := c.Cache.LoadBars(ticker, c.TTL)
	if err != nil {
		log.Printf("[WARN] cache read for %s: %v", ticker, err)
	} else if len(cached) > 0 {
		if len(cached) > days {
			cached = cached[len(cached)-days:]
		}
		return cached, nil
	}

	bars, err := c.Fetcher.FetchDailyBars(ticker, days)
	if err != nil {
		return nil, err
	}
	if len(bars) > 0 {
		if err := c.Cache.StoreBars(ticker, bars); err != nil {
			log.Printf("[WARN] cache write for %s: %v", ticker, err)
		}
	}
	return bars, nil
}

func (c *CachedFetcher) FetchMeta(ticker string) (*model.TickerMeta, error) {
	return c.Fetcher.FetchMeta(ticker)
}
