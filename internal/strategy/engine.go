package strategy

import "github.com/Yang0427/stocks/internal/model"

// Evaluate maps an indicator snapshot to a verdict by scanning the ordered
// rule table. It is pure and total: every snapshot matches a rule.
func Evaluate(snap *model.IndicatorSnapshot) model.Verdict {
	regime := Classify(snap)
	for _, r := range rules {
		if r.matches(regime, snap) {
			return r.verdict(snap)
		}
	}
	// Unreachable: the last rule matches unconditionally.
	return model.Verdict{Category: model.VerdictCautionTrendTesting, TargetPrice: snap.SMA200}
}
