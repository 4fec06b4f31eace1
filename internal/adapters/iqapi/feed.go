package iqapi

import (
	"context"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
)

// TransactionFeed adapts the platform's /api/transactions endpoint to the
// domain.TransactionFeed interface used by the collector.
type TransactionFeed struct {
	client *Client
}

// NewTransactionFeed wraps a platform client.
func NewTransactionFeed(client *Client) *TransactionFeed {
	return &TransactionFeed{client: client}
}

// FetchPage retrieves one page of the transaction history, applying the
// supplied filters. A document without a transactions array yields an empty
// page, not an error.
func (f *TransactionFeed) FetchPage(ctx context.Context, flt domain.Filters, page int) ([]domain.Transaction, error) {
	q := NewQuery().
		Set("page", page).
		Set("ticker", flt.Ticker).
		Set("agentTokenContract", flt.AgentTokenContract).
		Set("userId", flt.UserID)

	doc, err := f.client.Get(ctx, "/api/transactions", q)
	if err != nil {
		return nil, err
	}
	return doc.Transactions(), nil
}
