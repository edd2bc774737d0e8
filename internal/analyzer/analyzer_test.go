package analyzer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yang0427/stocks/internal/collector"
	"github.com/Yang0427/stocks/internal/model"
)

// accumulateBars builds a series that lands in the accumulate band: a long
// flat base at 90, a steady climb to 108, then fourteen alternating
// +0.3/-0.2 closes giving RSI(14) = 60 with the price above both SMAs.
func accumulateBars() []model.PriceBar {
	var closes []float64
	for i := 0; i < 200; i++ {
		closes = append(closes, 90)
	}
	for i := 1; i <= 36; i++ {
		closes = append(closes, 90+0.5*float64(i))
	}
	for i := 0; i < 7; i++ {
		closes = append(closes, closes[len(closes)-1]+0.3)
		closes = append(closes, closes[len(closes)-1]-0.2)
	}

	bars := make([]model.PriceBar, len(closes))
	base := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.PriceBar{
			Date: base.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, Volume: 500000,
		}
	}
	return bars
}

func TestAnalyzeTicker_AccumulateEndToEnd(t *testing.T) {
	fetcher := &collector.MockFetcher{
		BarsByTicker: map[string][]model.PriceBar{"1155.KL": accumulateBars()},
		MetaByTicker: map[string]*model.TickerMeta{
			"1155.KL": {LongName: "Malayan Banking Berhad", ShortName: "MAYBANK", Price: 108.7, DividendRate: 6.0},
		},
	}
	a := New(fetcher, 500, 0)

	rep, err := a.AnalyzeTicker("1155.KL")
	require.NoError(t, err)

	assert.Equal(t, "Malayan Banking Berhad - MAYBANK", rep.Name)
	assert.Equal(t, model.MarketMY, rep.Market)
	assert.Equal(t, "RM", rep.Currency)
	assert.InDelta(t, 60, rep.Indicators.RSI14, 1e-6)
	assert.False(t, rep.Indicators.VolumeStrong)
	assert.Equal(t, model.VerdictBuyAccumulate, rep.Verdict.Category)
	assert.Equal(t, rep.Price, rep.Verdict.TargetPrice)
	require.NotNil(t, rep.Lots, "MY ticker must carry a lot suggestion")
	assert.InDelta(t, 6.0/108.7*100, rep.DividendYieldPct, 1e-9)
}

func TestAnalyzeTicker_NoBoardLotsOutsideMY(t *testing.T) {
	fetcher := &collector.MockFetcher{Price: 180}
	a := New(fetcher, 500, 0)

	rep, err := a.AnalyzeTicker("AAPL")
	require.NoError(t, err)
	assert.Equal(t, model.MarketUS, rep.Market)
	assert.Nil(t, rep.Lots, "US ticker must have no lot suggestion")

	rep, err = a.AnalyzeTicker("0700.HK")
	require.NoError(t, err)
	assert.Equal(t, model.MarketHK, rep.Market)
	assert.Nil(t, rep.Lots)
}

func TestAnalyzeTicker_InsufficientHistorySkips(t *testing.T) {
	fetcher := &collector.MockFetcher{
		BarsByTicker: map[string][]model.PriceBar{"NEWIPO": collector.GenerateBars(25, 150)},
	}
	a := New(fetcher, 500, 0)

	_, err := a.AnalyzeTicker("NEWIPO")
	require.Error(t, err)
}

func TestAnalyzeTicker_EmptySeriesSkips(t *testing.T) {
	fetcher := &collector.MockFetcher{
		BarsByTicker: map[string][]model.PriceBar{"DELISTED": {}},
	}
	a := New(fetcher, 500, 0)

	_, err := a.AnalyzeTicker("DELISTED")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAnalyzeTicker_MetadataFailureTolerated(t *testing.T) {
	fetcher := &collector.MockFetcher{Price: 50, MetaErr: errors.New("quote lookup failed")}
	a := New(fetcher, 500, 0)

	rep, err := a.AnalyzeTicker("MSFT")
	require.NoError(t, err, "metadata failure must not skip the ticker")
	assert.Equal(t, "MSFT", rep.Name, "name falls back to the raw ticker")
	assert.Equal(t, model.CurrencyUnknown, rep.Currency)
	assert.Zero(t, rep.DividendYieldPct)
}

func TestAnalyzeAll_SkipsFailuresAndKeepsOrder(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Price: 20,
		BarsByTicker: map[string][]model.PriceBar{
			"BAD.KL": {}, // empty series, skipped
		},
	}
	a := New(fetcher, 500, 0)

	reports := a.AnalyzeAll([]string{"AAPL", "BAD.KL", "0700.HK", "MSFT"})
	require.Len(t, reports, 3)
	assert.Equal(t, "AAPL", reports[0].Ticker)
	assert.Equal(t, "0700.HK", reports[1].Ticker)
	assert.Equal(t, "MSFT", reports[2].Ticker)
}

func TestDividendYieldPct(t *testing.T) {
	tests := []struct {
		name string
		meta model.TickerMeta
		want float64
	}{
		{"rate over price preferred", model.TickerMeta{DividendRate: 2, Price: 100, DividendYield: 9.9}, 2.0},
		{"raw fraction scaled", model.TickerMeta{DividendYield: 0.035}, 3.5},
		{"raw percent passed through", model.TickerMeta{DividendYield: 3.5}, 3.5},
		{"nothing known", model.TickerMeta{}, 0},
		{"rate without price falls back", model.TickerMeta{DividendRate: 2, DividendYield: 0.04}, 4.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, dividendYieldPct(&tt.meta), 1e-9)
		})
	}
}
