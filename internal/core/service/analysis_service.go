package service

import (
	"context"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
)

// AnalysisService runs the full pipeline: paginated collection, metric
// aggregation, next-action forecast. Every invocation builds its transaction
// set fresh and discards it with the response; nothing is shared between
// requests.
type AnalysisService struct {
	collector  *Collector
	aggregator *Aggregator
	predictor  *Predictor
}

// NewAnalysisService wires the pipeline over the given feed.
func NewAnalysisService(feed domain.TransactionFeed) *AnalysisService {
	return &AnalysisService{
		collector:  NewCollector(feed),
		aggregator: NewAggregator(),
		predictor:  NewPredictor(),
	}
}

// PredictNextActions walks up to depth pages of the filtered feed and
// produces the forecast. Collection is best-effort, so this always returns
// an analysis — under total remote failure it is simply the empty-set
// forecast.
func (s *AnalysisService) PredictNextActions(ctx context.Context, f domain.Filters, depth int) *domain.Analysis {
	txns, pagesFetched := s.collector.Collect(ctx, f, depth)
	summary := s.aggregator.Summarize(txns)
	analysis := s.predictor.Forecast(summary, f, pagesFetched)
	return &analysis
}
