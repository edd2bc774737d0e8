package model

import "testing"

func TestMarketForTicker(t *testing.T) {
	tests := []struct {
		ticker string
		want   Market
	}{
		{"1155.KL", MarketMY},
		{"0700.HK", MarketHK},
		{"AAPL", MarketUS},
		{"BRK-B", MarketUS},
		{"KLCC", MarketUS}, // only the suffix counts, not the name
	}
	for _, tt := range tests {
		if got := MarketForTicker(tt.ticker); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.ticker, tt.want, got)
		}
	}
}

func TestMarketCapabilities(t *testing.T) {
	if !MarketMY.UsesBoardLots() {
		t.Error("MY must trade in board lots")
	}
	if MarketUS.UsesBoardLots() || MarketHK.UsesBoardLots() {
		t.Error("only MY trades in board lots")
	}
	if MarketMY.Currency() != "RM" || MarketHK.Currency() != "HKD" || MarketUS.Currency() != "USD" {
		t.Error("unexpected currency mapping")
	}
}

func TestTickerMetaDisplayName(t *testing.T) {
	tests := []struct {
		name string
		meta TickerMeta
		want string
	}{
		{"both differ", TickerMeta{LongName: "Apple Inc.", ShortName: "Apple"}, "Apple Inc. - Apple"},
		{"identical", TickerMeta{LongName: "Apple", ShortName: "Apple"}, "Apple"},
		{"long only", TickerMeta{LongName: "Apple Inc."}, "Apple Inc."},
		{"short only", TickerMeta{ShortName: "Apple"}, "Apple"},
		{"neither", TickerMeta{}, "AAPL"},
	}
	for _, tt := range tests {
		if got := tt.meta.DisplayName("AAPL"); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}
