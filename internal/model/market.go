package model

import (
	"strings"
	"time"
)

// PriceBar represents a single daily candlestick.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Market identifies the exchange a ticker trades on.
type Market string

const (
	MarketMY Market = "MY"
	MarketUS Market = "US"
	MarketHK Market = "HK"
)

// BoardLotSize is the fixed Bursa Malaysia trading unit (shares per lot).
const BoardLotSize = 100

// CurrencyUnknown is the display currency used when ticker metadata
// could not be retrieved.
const CurrencyUnknown = "N/A"

// MarketForTicker infers the market from the ticker suffix convention:
// ".KL" is Bursa Malaysia, ".HK" is Hong Kong, everything else is US.
func MarketForTicker(ticker string) Market {
	switch {
	case strings.HasSuffix(ticker, ".KL"):
		return MarketMY
	case strings.HasSuffix(ticker, ".HK"):
		return MarketHK
	default:
		return MarketUS
	}
}

// Currency returns the display currency for the market.
func (m Market) Currency() string {
	switch m {
	case MarketMY:
		return "RM"
	case MarketHK:
		return "HKD"
	default:
		return "USD"
	}
}

// UsesBoardLots reports whether the market trades in fixed 100-share lots.
// Only Bursa Malaysia does; US and HK positions are sized per unit.
func (m Market) UsesBoardLots() bool {
	return m == MarketMY
}
