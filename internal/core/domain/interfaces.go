package domain

import "context"

// TransactionFeed is one page of the platform's transaction history.
type TransactionFeed interface {
	// FetchPage retrieves the transactions on a single page (1-based) of the
	// remote feed, most recent first. An error covers exactly one page; the
	// caller decides whether to continue with later pages.
	FetchPage(ctx context.Context, f Filters, page int) ([]Transaction, error)
}
