package service

import (
	"context"
	"log"
	"time"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
)

const (
	// DefaultPageDepth is how many feed pages one analysis walks by default.
	DefaultPageDepth = 3
	// MaxPageDepth caps pagination to keep latency within a task timeout.
	MaxPageDepth = 10
	// pageTimeout bounds a single page fetch so one slow page cannot stall
	// the whole collection.
	pageTimeout = 10 * time.Second
)

// Collector walks the paginated transaction feed and merges the pages into a
// single ordered set. Collection is best-effort: a failed page is skipped,
// never fatal, so partial analytics stay available when the platform wobbles.
type Collector struct {
	feed domain.TransactionFeed
}

// NewCollector creates a collector over the given feed.
func NewCollector(feed domain.TransactionFeed) *Collector {
	return &Collector{feed: feed}
}

// Collect fetches pages 1..depth strictly in order, page n+1 only after page
// n resolved, and returns the merged set together with the number of pages
// attempted. Cancelling ctx aborts the remaining pages and returns the
// partial set.
func (c *Collector) Collect(ctx context.Context, f domain.Filters, depth int) ([]domain.Transaction, int) {
	var collected []domain.Transaction

	pagesFetched := 0
	for page := 1; page <= depth; page++ {
		if ctx.Err() != nil {
			log.Printf("collection aborted after %d of %d pages: %v", pagesFetched, depth, ctx.Err())
			break
		}
		pagesFetched++

		pageCtx, cancel := context.WithTimeout(ctx, pageTimeout)
		txns, err := c.feed.FetchPage(pageCtx, f, page)
		cancel()
		if err != nil {
			log.Printf("skipping page %d: %v", page, err)
			continue
		}
		collected = append(collected, txns...)
	}

	return collected, pagesFetched
}
