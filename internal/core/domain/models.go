package domain

import (
	"github.com/shopspring/decimal"
)

// Transaction represents a single trade event as returned by the IQ platform
// transaction feed. The pipeline only interprets a handful of fields; anything
// else the platform sends is carried through untouched so tool responses stay
// faithful to the remote API.
type Transaction map[string]interface{}

// IsBuy reports whether the record is a buy. Missing or non-boolean values
// count as a sell.
func (t Transaction) IsBuy() bool {
	b, _ := t["isBuy"].(bool)
	return b
}

// UsdAmount returns the USD size of the trade. The platform sends the amount
// either as a decimal string or a JSON number; anything absent or malformed
// contributes zero so aggregation never fails on a single bad record.
func (t Transaction) UsdAmount() decimal.Decimal {
	switch v := t["usdAmount"].(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(v)
	}
	return decimal.Zero
}

// AgentTicker returns the ticker of the traded agent token, if present.
func (t Transaction) AgentTicker() string {
	s, _ := t["agentTicker"].(string)
	return s
}

// UserID returns the trading user's identifier, if present.
func (t Transaction) UserID() string {
	s, _ := t["userId"].(string)
	return s
}

// Filters narrows the transaction feed. Zero-value fields are omitted from
// the remote query.
type Filters struct {
	Ticker             string `json:"ticker,omitempty"`
	AgentTokenContract string `json:"agentTokenContract,omitempty"`
	UserID             string `json:"userId,omitempty"`
}

// Summary holds the statistics derived from one collected transaction set.
type Summary struct {
	TotalTransactions int           `json:"totalTransactions"`
	BuyTransactions   int           `json:"buyTransactions"`
	SellTransactions  int           `json:"sellTransactions"`
	BuyRatio          float64       `json:"buyRatio"`
	SellRatio         float64       `json:"sellRatio"`
	TotalUsdAmount    float64       `json:"totalUsdAmount"`
	AverageUsdAmount  float64       `json:"averageUsdAmount"`
	RecentActivity    []Transaction `json:"recentActivity"`
}

// Analysis is the full next-action forecast produced by the prediction
// engine. It is a heuristic extrapolation from recent trading ratios, not a
// trained model.
type Analysis struct {
	Summary

	TradingFrequency    float64 `json:"tradingFrequency"` // records per page fetched
	BuyVsSellRatio      float64 `json:"buyVsSellRatio"`
	TotalVolume         float64 `json:"totalVolume"`
	MostActiveAgent     string  `json:"mostActiveAgent"`
	PagesFetched        int     `json:"pagesFetched"`
	PredictedNextAction string  `json:"predictedNextAction"` // "buy", "sell" or "hold"
	MarketSentiment     string  `json:"marketSentiment"`     // "bullish", "bearish" or "neutral"
}

// UnspecifiedAgent is the label used for MostActiveAgent when no ticker
// filter was supplied. The engine echoes the input filter rather than
// inferring the busiest agent from the collected data.
const UnspecifiedAgent = "unspecified"
