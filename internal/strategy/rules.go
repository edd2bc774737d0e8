package strategy

import "github.com/Yang0427/stocks/internal/model"

// Regime classifies the trend from the two moving averages.
type Regime string

const (
	RegimeBull      Regime = "BULL"      // golden cross and price above SMA200
	RegimeBear      Regime = "BEAR"      // SMA50 at or below SMA200
	RegimeUncertain Regime = "UNCERTAIN" // golden cross but price below SMA200
)

// Classify determines the market regime. Any missing golden cross is a bear
// regime regardless of where the price sits.
func Classify(snap *model.IndicatorSnapshot) Regime {
	bull := snap.SMA50 > snap.SMA200
	healthy := snap.Price > snap.SMA200
	switch {
	case bull && healthy:
		return RegimeBull
	case !bull:
		return RegimeBear
	default:
		return RegimeUncertain
	}
}

// rule maps a matched condition to a verdict.
type rule struct {
	name    string
	matches func(r Regime, s *model.IndicatorSnapshot) bool
	verdict func(s *model.IndicatorSnapshot) model.Verdict
}

// rules is the ordered decision table. Evaluation is top to bottom and the
// first match wins, so precedence (bull entries, then the bear catch-all,
// then trend-testing) is part of the contract.
var rules = []rule{
	{
		name: "bull/discount",
		matches: func(r Regime, s *model.IndicatorSnapshot) bool {
			return r == RegimeBull && s.RSI14 < 55
		},
		verdict: func(s *model.IndicatorSnapshot) model.Verdict {
			return model.Verdict{Category: model.VerdictStrongBuyDiscount, TargetPrice: s.Price}
		},
	},
	{
		name: "bull/overheated",
		matches: func(r Regime, s *model.IndicatorSnapshot) bool {
			return r == RegimeBull && s.RSI14 > 70
		},
		verdict: func(s *model.IndicatorSnapshot) model.Verdict {
			return model.Verdict{Category: model.VerdictHoldOverheated, TargetPrice: s.SMA50}
		},
	},
	{
		name: "bull/momentum",
		matches: func(r Regime, s *model.IndicatorSnapshot) bool {
			return r == RegimeBull && s.VolumeStrong
		},
		verdict: func(s *model.IndicatorSnapshot) model.Verdict {
			return model.Verdict{Category: model.VerdictBuyHighMomentum, TargetPrice: s.Price}
		},
	},
	{
		name: "bull/accumulate",
		matches: func(r Regime, s *model.IndicatorSnapshot) bool {
			return r == RegimeBull
		},
		verdict: func(s *model.IndicatorSnapshot) model.Verdict {
			return model.Verdict{Category: model.VerdictBuyAccumulate, TargetPrice: s.Price}
		},
	},
	{
		name: "bear",
		matches: func(r Regime, s *model.IndicatorSnapshot) bool {
			return r == RegimeBear
		},
		verdict: func(s *model.IndicatorSnapshot) model.Verdict {
			return model.Verdict{Category: model.VerdictAvoidSell, TargetPrice: 0}
		},
	},
	{
		name: "trend-testing",
		matches: func(r Regime, s *model.IndicatorSnapshot) bool {
			return true
		},
		verdict: func(s *model.IndicatorSnapshot) model.Verdict {
			return model.Verdict{Category: model.VerdictCautionTrendTesting, TargetPrice: s.SMA200}
		},
	},
}
