package service

import (
	"github.com/shopspring/decimal"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
)

// RecentActivityWindow is how many of the newest records the summary carries.
const RecentActivityWindow = 10

// Aggregator derives trading statistics from a collected transaction set.
// Pure computation: no I/O, the input set is never mutated.
type Aggregator struct{}

// NewAggregator creates an aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Summarize partitions the set into buys and sells and computes ratios, USD
// totals and the recent-activity slice. The feed already orders records most
// recent first, so the first RecentActivityWindow records are the newest; the
// aggregator does not re-sort.
//
// An empty set produces zero ratios and a zero average rather than a
// division fault.
func (a *Aggregator) Summarize(txns []domain.Transaction) domain.Summary {
	s := domain.Summary{
		TotalTransactions: len(txns),
	}

	totalUsd := decimal.Zero
	for _, t := range txns {
		if t.IsBuy() {
			s.BuyTransactions++
		} else {
			s.SellTransactions++
		}
		totalUsd = totalUsd.Add(t.UsdAmount())
	}
	s.TotalUsdAmount = totalUsd.InexactFloat64()

	if s.TotalTransactions > 0 {
		total := decimal.NewFromInt(int64(s.TotalTransactions))
		s.BuyRatio = float64(s.BuyTransactions) / float64(s.TotalTransactions)
		s.SellRatio = float64(s.SellTransactions) / float64(s.TotalTransactions)
		s.AverageUsdAmount = totalUsd.Div(total).InexactFloat64()
	}

	window := RecentActivityWindow
	if window > len(txns) {
		window = len(txns)
	}
	s.RecentActivity = make([]domain.Transaction, window)
	copy(s.RecentActivity, txns[:window])

	return s
}
