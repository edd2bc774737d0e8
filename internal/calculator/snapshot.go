package calculator

import (
	"errors"
	"fmt"

	"github.com/Yang0427/stocks/internal/model"
)

// MinBars is the minimum daily history required to build a snapshot; it is
// dictated by the 200-day moving average.
const MinBars = 200

// ErrInsufficientHistory is returned when fewer than MinBars bars are
// available. Callers must skip the ticker entirely rather than fall back to
// partial indicators.
var ErrInsufficientHistory = errors.New("insufficient history for indicators")

// BuildSnapshot derives the latest indicator state from a chronological
// sequence of daily bars.
func BuildSnapshot(bars []model.PriceBar) (*model.IndicatorSnapshot, error) {
	if len(bars) < MinBars {
		return nil, fmt.Errorf("%w: have %d bars, need %d", ErrInsufficientHistory, len(bars), MinBars)
	}

	closes := extractCloses(bars)

	rsi, err := CalculateRSI(closes, 14)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	sma50, err := CalculateSMA(closes, 50)
	if err != nil {
		return nil, fmt.Errorf("sma50: %w", err)
	}
	sma200, err := CalculateSMA(closes, 200)
	if err != nil {
		return nil, fmt.Errorf("sma200: %w", err)
	}

	return &model.IndicatorSnapshot{
		Price:        closes[len(closes)-1],
		RSI14:        rsi,
		SMA50:        sma50,
		SMA200:       sma200,
		VolumeStrong: VolumeStrong(bars),
	}, nil
}
