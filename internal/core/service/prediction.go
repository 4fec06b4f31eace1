package service

import (
	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
)

// Buy-ratio thresholds for the next-action heuristic.
const (
	bullishThreshold = 0.6
	bearishThreshold = 0.4
)

// Predictor turns a trading summary into a next-action forecast. The forecast
// is a descriptive extrapolation of recent buy/sell pressure; there is no
// trained model behind it.
type Predictor struct{}

// NewPredictor creates a predictor.
func NewPredictor() *Predictor {
	return &Predictor{}
}

// Forecast combines the summary with the original filters and the page depth
// that produced it.
//
// Zero denominators resolve to 0: BuyVsSellRatio when there were no sells,
// TradingFrequency when no page was fetched.
//
// MostActiveAgent simply echoes the ticker filter (or "unspecified"); the
// engine does not derive the busiest agent from the collected data. Known
// limitation carried over from the platform tooling this replaces.
func (p *Predictor) Forecast(s domain.Summary, f domain.Filters, pagesFetched int) domain.Analysis {
	a := domain.Analysis{
		Summary:      s,
		TotalVolume:  s.TotalUsdAmount,
		PagesFetched: pagesFetched,
	}

	if pagesFetched > 0 {
		a.TradingFrequency = float64(s.TotalTransactions) / float64(pagesFetched)
	}
	if s.SellTransactions > 0 {
		a.BuyVsSellRatio = float64(s.BuyTransactions) / float64(s.SellTransactions)
	}

	a.MostActiveAgent = f.Ticker
	if a.MostActiveAgent == "" {
		a.MostActiveAgent = domain.UnspecifiedAgent
	}

	a.PredictedNextAction, a.MarketSentiment = classify(s)

	return a
}

// classify maps the buy ratio onto an action and a sentiment label. An empty
// set is a hold: no data is not a signal.
func classify(s domain.Summary) (action, sentiment string) {
	if s.TotalTransactions == 0 {
		return "hold", "neutral"
	}
	switch {
	case s.BuyRatio >= bullishThreshold:
		return "buy", "bullish"
	case s.BuyRatio <= bearishThreshold:
		return "sell", "bearish"
	default:
		return "hold", "neutral"
	}
}
