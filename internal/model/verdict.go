package model

// VerdictCategory is the categorical recommendation for a ticker.
type VerdictCategory string

const (
	VerdictStrongBuyDiscount   VerdictCategory = "STRONG_BUY_DISCOUNT"
	VerdictHoldOverheated      VerdictCategory = "HOLD_OVERHEATED"
	VerdictBuyHighMomentum     VerdictCategory = "BUY_HIGH_MOMENTUM"
	VerdictBuyAccumulate       VerdictCategory = "BUY_ACCUMULATE"
	VerdictAvoidSell           VerdictCategory = "AVOID_SELL"
	VerdictCautionTrendTesting VerdictCategory = "CAUTION_TREND_TESTING"
)

// Verdict is the output of the decision engine. A TargetPrice of 0 is a
// sentinel meaning there is no entry point at all.
type Verdict struct {
	Category    VerdictCategory
	TargetPrice float64
}
