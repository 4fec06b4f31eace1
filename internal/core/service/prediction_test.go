package service

import (
	"context"
	"math"
	"testing"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
)

func TestPredictor_Forecast(t *testing.T) {
	summary := domain.Summary{
		TotalTransactions: 12,
		BuyTransactions:   7,
		SellTransactions:  5,
		BuyRatio:          7.0 / 12.0,
		SellRatio:         5.0 / 12.0,
		TotalUsdAmount:    110,
	}

	a := NewPredictor().Forecast(summary, domain.Filters{Ticker: "SOPHIA"}, 3)

	if a.TradingFrequency != 4 {
		t.Errorf("TradingFrequency = %v, want 4", a.TradingFrequency)
	}
	if math.Abs(a.BuyVsSellRatio-1.4) > 1e-9 {
		t.Errorf("BuyVsSellRatio = %v, want 1.4", a.BuyVsSellRatio)
	}
	if a.TotalVolume != 110 {
		t.Errorf("TotalVolume = %v, want 110", a.TotalVolume)
	}
	if a.MostActiveAgent != "SOPHIA" {
		t.Errorf("MostActiveAgent = %q, want the echoed ticker", a.MostActiveAgent)
	}
	if a.PagesFetched != 3 {
		t.Errorf("PagesFetched = %d, want 3", a.PagesFetched)
	}
}

func TestPredictor_ZeroDenominatorSentinels(t *testing.T) {
	tests := []struct {
		name         string
		summary      domain.Summary
		pagesFetched int
		wantRatio    float64
		wantFreq     float64
	}{
		{
			name:         "no sells",
			summary:      domain.Summary{TotalTransactions: 4, BuyTransactions: 4, BuyRatio: 1},
			pagesFetched: 2,
			wantRatio:    0,
			wantFreq:     2,
		},
		{
			name:         "no pages fetched",
			summary:      domain.Summary{},
			pagesFetched: 0,
			wantRatio:    0,
			wantFreq:     0,
		},
		{
			name:         "empty set",
			summary:      domain.Summary{},
			pagesFetched: 3,
			wantRatio:    0,
			wantFreq:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewPredictor().Forecast(tt.summary, domain.Filters{}, tt.pagesFetched)
			if a.BuyVsSellRatio != tt.wantRatio {
				t.Errorf("BuyVsSellRatio = %v, want %v", a.BuyVsSellRatio, tt.wantRatio)
			}
			if a.TradingFrequency != tt.wantFreq {
				t.Errorf("TradingFrequency = %v, want %v", a.TradingFrequency, tt.wantFreq)
			}
			if math.IsNaN(a.BuyVsSellRatio) || math.IsInf(a.BuyVsSellRatio, 0) {
				t.Error("BuyVsSellRatio must be finite")
			}
		})
	}
}

func TestPredictor_UnspecifiedAgentWithoutTickerFilter(t *testing.T) {
	a := NewPredictor().Forecast(domain.Summary{}, domain.Filters{UserID: "u-1"}, 1)
	if a.MostActiveAgent != domain.UnspecifiedAgent {
		t.Errorf("MostActiveAgent = %q, want %q", a.MostActiveAgent, domain.UnspecifiedAgent)
	}
}

func TestPredictor_NextActionHeuristic(t *testing.T) {
	tests := []struct {
		name          string
		summary       domain.Summary
		wantAction    string
		wantSentiment string
	}{
		{
			name:          "buy pressure",
			summary:       domain.Summary{TotalTransactions: 10, BuyTransactions: 7, SellTransactions: 3, BuyRatio: 0.7},
			wantAction:    "buy",
			wantSentiment: "bullish",
		},
		{
			name:          "sell pressure",
			summary:       domain.Summary{TotalTransactions: 10, BuyTransactions: 3, SellTransactions: 7, BuyRatio: 0.3},
			wantAction:    "sell",
			wantSentiment: "bearish",
		},
		{
			name:          "balanced market",
			summary:       domain.Summary{TotalTransactions: 10, BuyTransactions: 5, SellTransactions: 5, BuyRatio: 0.5},
			wantAction:    "hold",
			wantSentiment: "neutral",
		},
		{
			name:          "no data is not a signal",
			summary:       domain.Summary{},
			wantAction:    "hold",
			wantSentiment: "neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewPredictor().Forecast(tt.summary, domain.Filters{}, 3)
			if a.PredictedNextAction != tt.wantAction {
				t.Errorf("PredictedNextAction = %q, want %q", a.PredictedNextAction, tt.wantAction)
			}
			if a.MarketSentiment != tt.wantSentiment {
				t.Errorf("MarketSentiment = %q, want %q", a.MarketSentiment, tt.wantSentiment)
			}
		})
	}
}

func TestAnalysisService_EndToEnd(t *testing.T) {
	feed := &fakeFeed{
		pages: map[int][]domain.Transaction{
			1: append(makeTxns(5, true, "10"), makeTxns(5, false, "10")...),
			3: makeTxns(2, true, "5"),
		},
		failPages: map[int]bool{2: true},
	}

	a := NewAnalysisService(feed).PredictNextActions(context.Background(), domain.Filters{Ticker: "IQ"}, 3)

	if a.TotalTransactions != 12 {
		t.Errorf("TotalTransactions = %d, want 12", a.TotalTransactions)
	}
	if a.TradingFrequency != 4 {
		t.Errorf("TradingFrequency = %v, want 4", a.TradingFrequency)
	}
	if a.MostActiveAgent != "IQ" {
		t.Errorf("MostActiveAgent = %q, want IQ", a.MostActiveAgent)
	}
	if a.TotalVolume != 110 {
		t.Errorf("TotalVolume = %v, want 110", a.TotalVolume)
	}
}
