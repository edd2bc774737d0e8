package fees

import (
	"math"

	"github.com/Yang0427/stocks/internal/model"
)

// Bursa Malaysia retail fee model (flat-fee broker schedule).
const (
	platformFee     = 3.00   // flat per trade
	clearingFeeRate = 0.0003 // of trade value
	maxLots         = 99
	feeThresholdPct = 1.0
)

// MinimumLots finds the smallest board-lot count whose total transaction fee
// stays under 1% of trade value. Only MY tickers trade in 100-share board
// lots; other markets return nil ("not applicable", distinct from zero lots).
//
// The scan stays a bounded linear search: the fee curve generally falls as
// the flat platform fee amortizes, but stamp duty is a step function, so a
// closed-form shortcut is not safe.
//
// When no count in [1,99] qualifies, the result degenerates to a single lot
// with its actual fee percentage; callers must treat FeePercent >= 1.0 as
// "no qualifying size found".
func MinimumLots(unitPrice float64, market model.Market) *model.LotSuggestion {
	if !market.UsesBoardLots() {
		return nil
	}

	for lots := 1; lots <= maxLots; lots++ {
		value := unitPrice * model.BoardLotSize * float64(lots)
		if pct := feePercent(value); pct < feeThresholdPct {
			return &model.LotSuggestion{Lots: lots, TotalCost: value, FeePercent: pct}
		}
	}

	value := unitPrice * model.BoardLotSize
	return &model.LotSuggestion{Lots: 1, TotalCost: value, FeePercent: feePercent(value)}
}

// feePercent computes the total transaction fee as a percentage of trade
// value: flat platform fee, stamp duty of RM1 per RM1000 (rounded up,
// minimum RM1) and the clearing fee.
func feePercent(tradeValue float64) float64 {
	stampDuty := math.Ceil(tradeValue / 1000)
	if stampDuty < 1 {
		stampDuty = 1
	}
	clearing := tradeValue * clearingFeeRate
	total := platformFee + stampDuty + clearing
	return total / tradeValue * 100
}
