package strategy

import (
	"testing"

	"github.com/Yang0427/stocks/internal/model"
)

func TestEvaluate_Categories(t *testing.T) {
	tests := []struct {
		name     string
		snap     model.IndicatorSnapshot
		category model.VerdictCategory
		target   float64
	}{
		{
			name:     "bull with discount RSI",
			snap:     model.IndicatorSnapshot{Price: 110, RSI14: 40, SMA50: 105, SMA200: 100},
			category: model.VerdictStrongBuyDiscount,
			target:   110,
		},
		{
			name:     "bull overheated",
			snap:     model.IndicatorSnapshot{Price: 110, RSI14: 75, SMA50: 105, SMA200: 100},
			category: model.VerdictHoldOverheated,
			target:   105,
		},
		{
			name:     "bull mid-RSI with strong volume",
			snap:     model.IndicatorSnapshot{Price: 110, RSI14: 60, SMA50: 105, SMA200: 100, VolumeStrong: true},
			category: model.VerdictBuyHighMomentum,
			target:   110,
		},
		{
			name:     "bull mid-RSI with normal volume",
			snap:     model.IndicatorSnapshot{Price: 108, RSI14: 60, SMA50: 105, SMA200: 100},
			category: model.VerdictBuyAccumulate,
			target:   108,
		},
		{
			name:     "death cross regardless of price",
			snap:     model.IndicatorSnapshot{Price: 120, RSI14: 30, SMA50: 95, SMA200: 100, VolumeStrong: true},
			category: model.VerdictAvoidSell,
			target:   0,
		},
		{
			name:     "equal moving averages is bear",
			snap:     model.IndicatorSnapshot{Price: 120, RSI14: 50, SMA50: 100, SMA200: 100},
			category: model.VerdictAvoidSell,
			target:   0,
		},
		{
			name:     "golden cross but price below SMA200",
			snap:     model.IndicatorSnapshot{Price: 95, RSI14: 50, SMA50: 105, SMA200: 100},
			category: model.VerdictCautionTrendTesting,
			target:   100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(&tt.snap)
			if v.Category != tt.category {
				t.Errorf("expected category %s, got %s", tt.category, v.Category)
			}
			if v.TargetPrice != tt.target {
				t.Errorf("expected target %.2f, got %.2f", tt.target, v.TargetPrice)
			}
		})
	}
}

func TestEvaluate_RSIBoundaries(t *testing.T) {
	// RSI 55 and 70 both land in the accumulate band: the discount branch is
	// strict <55 and the overheated branch is strict >70.
	for _, rsi := range []float64{55, 70} {
		snap := model.IndicatorSnapshot{Price: 110, RSI14: rsi, SMA50: 105, SMA200: 100}
		v := Evaluate(&snap)
		if v.Category != model.VerdictBuyAccumulate {
			t.Errorf("rsi=%.0f: expected BUY_ACCUMULATE, got %s", rsi, v.Category)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		snap model.IndicatorSnapshot
		want Regime
	}{
		{"golden cross healthy price", model.IndicatorSnapshot{Price: 110, SMA50: 105, SMA200: 100}, RegimeBull},
		{"no golden cross", model.IndicatorSnapshot{Price: 110, SMA50: 99, SMA200: 100}, RegimeBear},
		{"price at SMA200 is not healthy", model.IndicatorSnapshot{Price: 100, SMA50: 105, SMA200: 100}, RegimeUncertain},
		{"golden cross price below SMA200", model.IndicatorSnapshot{Price: 95, SMA50: 105, SMA200: 100}, RegimeUncertain},
	}
	for _, tt := range tests {
		if got := Classify(&tt.snap); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}

func TestRules_LastRuleIsCatchAll(t *testing.T) {
	last := rules[len(rules)-1]
	for _, r := range []Regime{RegimeBull, RegimeBear, RegimeUncertain} {
		if !last.matches(r, &model.IndicatorSnapshot{}) {
			t.Fatalf("final rule must match every regime, failed for %s", r)
		}
	}
}

func TestTargetAdvice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		verdict  model.Verdict
		advice   EntryAdvice
		discount float64
	}{
		{"price above target waits", 110, model.Verdict{TargetPrice: 99}, AdviceWaitForTarget, 10},
		{"price equal to target buys now", 100, model.Verdict{TargetPrice: 100}, AdviceBuyNow, 0},
		{"price below target buys now", 95, model.Verdict{TargetPrice: 100}, AdviceBuyNow, 0},
		{"zero target means no entry", 95, model.Verdict{TargetPrice: 0}, AdviceNoEntry, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice, discount := TargetAdvice(tt.price, tt.verdict)
			if advice != tt.advice {
				t.Errorf("expected %s, got %s", tt.advice, advice)
			}
			if discount != tt.discount {
				t.Errorf("expected discount %.2f, got %.2f", tt.discount, discount)
			}
		})
	}
}
