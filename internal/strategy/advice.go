package strategy

import "github.com/Yang0427/stocks/internal/model"

// EntryAdvice is the user-facing classification of the verdict target.
type EntryAdvice string

const (
	AdviceWaitForTarget EntryAdvice = "WAIT_FOR_TARGET"
	AdviceBuyNow        EntryAdvice = "BUY_NOW"
	AdviceNoEntry       EntryAdvice = "NO_ENTRY"
)

// TargetAdvice derives the entry guidance from the current price and the
// verdict. The wait branch uses a strict comparison: a price exactly at the
// target is still a buy-now. The second return is the discount percentage
// to the target, only meaningful for AdviceWaitForTarget.
func TargetAdvice(price float64, v model.Verdict) (EntryAdvice, float64) {
	switch {
	case v.TargetPrice > 0 && price > v.TargetPrice:
		return AdviceWaitForTarget, (price - v.TargetPrice) / price * 100
	case v.TargetPrice > 0:
		return AdviceBuyNow, 0
	default:
		return AdviceNoEntry, 0
	}
}
