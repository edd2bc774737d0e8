package reporter

import (
	"fmt"
	"strings"

	"github.com/Yang0427/stocks/internal/model"
	"github.com/Yang0427/stocks/internal/strategy"
)

// categoryLabels maps verdict categories to their display labels.
var categoryLabels = map[model.VerdictCategory]string{
	model.VerdictStrongBuyDiscount:   "💎 STRONG BUY (Discount)",
	model.VerdictHoldOverheated:      "✅ HOLD / WAIT (Overheated)",
	model.VerdictBuyHighMomentum:     "🚀 BUY (High Momentum)",
	model.VerdictBuyAccumulate:       "📈 BUY / ACCUMULATE",
	model.VerdictAvoidSell:           "⛔ AVOID / SELL",
	model.VerdictCautionTrendTesting: "⚠️ CAUTION (Trend Testing)",
}

// FormatReport renders the full scan into the console report block.
func FormatReport(reports []*model.StockReport) string {
	var b strings.Builder
	b.WriteString("\n" + strings.Repeat("=", 80) + "\n")
	b.WriteString("🎯  GLOBAL MARKET REPORT\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")
	for _, r := range reports {
		b.WriteString(FormatStock(r))
	}
	return b.String()
}

// FormatStock renders one per-ticker block.
func FormatStock(r *model.StockReport) string {
	var b strings.Builder

	volMsg := "Normal"
	if r.Indicators.VolumeStrong {
		volMsg = "🔥 HIGH"
	}
	trendIcon := "💀 DEATH"
	if r.Indicators.SMA50 > r.Indicators.SMA200 {
		trendIcon = "🌟 GOLDEN"
	}

	b.WriteString(fmt.Sprintf("\n🔹 %s (%s)\n", r.Name, r.Ticker))
	b.WriteString(fmt.Sprintf("   Price:      %s %.3f  |  Yield: %.2f%%\n", r.Currency, r.Price, r.DividendYieldPct))
	b.WriteString(fmt.Sprintf("   Indicators: RSI: %.1f  |  Vol: %s\n", r.Indicators.RSI14, volMsg))
	b.WriteString(fmt.Sprintf("   Trend:      %s (SMA50: %.3f | SMA200: %.3f)\n",
		trendIcon, r.Indicators.SMA50, r.Indicators.SMA200))
	b.WriteString(fmt.Sprintf("   Verdict:    %s\n", categoryLabels[r.Verdict.Category]))
	b.WriteString(fmt.Sprintf("   Target:     %s\n", FormatTargetLine(r)))
	b.WriteString(formatSuggestion(r))
	b.WriteString(strings.Repeat("-", 80) + "\n")
	return b.String()
}

// FormatTargetLine derives the user-facing target guidance line.
func FormatTargetLine(r *model.StockReport) string {
	advice, discount := strategy.TargetAdvice(r.Price, r.Verdict)
	switch advice {
	case strategy.AdviceWaitForTarget:
		return fmt.Sprintf("Wait for %s %.3f (-%.1f%%)", r.Currency, r.Verdict.TargetPrice, discount)
	case strategy.AdviceBuyNow:
		return "✅ BUY NOW"
	default:
		return "❌ NO ENTRY"
	}
}

// formatSuggestion renders the position-sizing lines. Markets without board
// lots get a per-unit suggestion; a zero target suppresses the suggestion.
func formatSuggestion(r *model.StockReport) string {
	if r.Verdict.TargetPrice <= 0 {
		return ""
	}
	var b strings.Builder
	if r.Lots != nil {
		b.WriteString(fmt.Sprintf("   🛒 SUGGESTION: Buy %d Lots (%s %.2f)\n", r.Lots.Lots, r.Currency, r.Lots.TotalCost))
		b.WriteString(fmt.Sprintf("      (Keeps fee impact low at %.2f%%)\n", r.Lots.FeePercent))
	} else {
		b.WriteString(fmt.Sprintf("   🛒 SUGGESTION: Buy 1 Unit (%s %.3f)\n", r.Currency, r.Price))
		b.WriteString("      (US/HK Stocks do not use 100-unit lots)\n")
	}
	return b.String()
}
