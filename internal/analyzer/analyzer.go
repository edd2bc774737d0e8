package analyzer

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Yang0427/stocks/internal/calculator"
	"github.com/Yang0427/stocks/internal/collector"
	"github.com/Yang0427/stocks/internal/fees"
	"github.com/Yang0427/stocks/internal/model"
	"github.com/Yang0427/stocks/internal/strategy"
)

// ErrNoData is returned when the data source yields an empty series for a
// ticker. The ticker is skipped, identically to insufficient history.
var ErrNoData = errors.New("no price data returned")

// Analyzer runs the per-ticker pipeline: metadata, bars, indicators,
// verdict, lot sizing.
type Analyzer struct {
	Fetcher      collector.Fetcher
	LookbackDays int
	Delay        time.Duration // politeness delay between tickers
}

func New(fetcher collector.Fetcher, lookbackDays int, delay time.Duration) *Analyzer {
	return &Analyzer{Fetcher: fetcher, LookbackDays: lookbackDays, Delay: delay}
}

// AnalyzeTicker produces the finalized report record for one ticker.
// A metadata failure is tolerated (name falls back to the raw ticker, yield
// to 0, currency to the unknown sentinel); a bar fetch failure or short
// history is not, and the error tells the caller to skip the ticker.
func (a *Analyzer) AnalyzeTicker(ticker string) (*model.StockReport, error) {
	market := model.MarketForTicker(ticker)

	name := ticker
	currency := model.CurrencyUnknown
	yieldPct := 0.0
	if meta, err := a.Fetcher.FetchMeta(ticker); err != nil {
		log.Printf("[WARN] metadata for %s unavailable: %v", ticker, err)
	} else {
		name = meta.DisplayName(ticker)
		currency = market.Currency()
		yieldPct = dividendYieldPct(meta)
	}

	bars, err := a.Fetcher.FetchDailyBars(ticker, a.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	snap, err := calculator.BuildSnapshot(bars)
	if err != nil {
		return nil, err
	}

	return &model.StockReport{
		Ticker:           ticker,
		Name:             name,
		Market:           market,
		Currency:         currency,
		Price:            snap.Price,
		DividendYieldPct: yieldPct,
		Indicators:       *snap,
		Verdict:          strategy.Evaluate(snap),
		Lots:             fees.MinimumLots(snap.Price, market),
	}, nil
}

// AnalyzeAll processes tickers in the configured order. Failed tickers are
// logged and skipped; they never abort the batch, and the output order
// matches the input order.
func (a *Analyzer) AnalyzeAll(tickers []string) []*model.StockReport {
	reports := make([]*model.StockReport, 0, len(tickers))
	for i, ticker := range tickers {
		rep, err := a.AnalyzeTicker(ticker)
		if err != nil {
			log.Printf("[WARN] skipping %s: %v", ticker, err)
		} else {
			reports = append(reports, rep)
		}
		if a.Delay > 0 && i < len(tickers)-1 {
			time.Sleep(a.Delay)
		}
	}
	return reports
}

// dividendYieldPct computes the yield percentage, preferring the precise
// rate/price ratio. The raw yield fallback is ambiguous at the source:
// values below 1 are assumed to be fractions and scaled by 100, values at
// or above 1 are taken as already-percentages. Kept as-is; a sub-1% yield
// already reported in percent form will be misread, but the provider does
// not say which form it sends.
func dividendYieldPct(meta *model.TickerMeta) float64 {
	if meta.DividendRate > 0 && meta.Price > 0 {
		return meta.DividendRate / meta.Price * 100
	}
	raw := meta.DividendYield
	switch {
	case raw <= 0:
		return 0.0
	case raw < 1:
		return raw * 100
	default:
		return raw
	}
}
