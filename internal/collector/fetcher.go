package collector

import "github.com/Yang0427/stocks/internal/model"

// Fetcher defines the interface for retrieving market data.
type Fetcher interface {
	// FetchDailyBars returns up to `days` chronological daily bars. An empty
	// result is treated by callers as "no data", not as an error.
	FetchDailyBars(ticker string, days int) ([]model.PriceBar, error)
	// FetchMeta returns display and dividend metadata for the ticker.
	FetchMeta(ticker string) (*model.TickerMeta, error)
	Name() string
}
