package model

// TickerMeta holds the metadata fields retrieved alongside price history.
// DividendYield is the provider's raw yield value, which may be a fraction
// or an already-scaled percentage depending on the source.
type TickerMeta struct {
	LongName      string
	ShortName     string
	Price         float64 // current price, or previous close when unavailable
	DividendRate  float64 // dividend per share, annualized
	DividendYield float64
}

// DisplayName combines the long and short names when both exist and differ,
// falls back to whichever is present, then to the given fallback.
func (m *TickerMeta) DisplayName(fallback string) string {
	switch {
	case m.LongName != "" && m.ShortName != "" && m.LongName != m.ShortName:
		return m.LongName + " - " + m.ShortName
	case m.LongName != "":
		return m.LongName
	case m.ShortName != "":
		return m.ShortName
	default:
		return fallback
	}
}

// LotSuggestion is the minimum-cost board-lot recommendation for MY tickers.
type LotSuggestion struct {
	Lots       int
	TotalCost  float64
	FeePercent float64
}

// StockReport is the finalized per-ticker record handed to the renderer.
// Lots is nil for markets that do not trade in board lots.
type StockReport struct {
	Ticker           string
	Name             string
	Market           Market
	Currency         string
	Price            float64
	DividendYieldPct float64
	Indicators       IndicatorSnapshot
	Verdict          Verdict
	Lots             *LotSuggestion
}
