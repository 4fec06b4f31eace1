// Package tools exposes the IQ platform analytics as callable operations:
// the four analysis tools built on the collection pipeline plus the market
// data passthroughs. Every operation validates its parameters at the
// boundary and returns either a JSON-serializable result or an error; the
// Registry turns both into the string the invoking layer expects.
package tools

import (
	"context"
	"log"
	"time"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/adapters/iqapi"
	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/service"
	"github.com/iqinsightlabs/iq-agent-analytics/pkg/cache"
)

// metricsCacheTTL is how long a platform metrics document stays fresh.
const metricsCacheTTL = time.Minute

// Service implements the callable operations over the platform client and
// the analysis pipeline.
type Service struct {
	client   *iqapi.Client
	analysis *service.AnalysisService
	cache    cache.AgentCache
}

// NewService builds the tool service. A nil cache disables caching.
func NewService(client *iqapi.Client, analysis *service.AnalysisService, c cache.AgentCache) *Service {
	if c == nil {
		c = &cache.NoOpCache{}
	}
	return &Service{client: client, analysis: analysis, cache: c}
}

// Metrics fetches one of the platform metrics documents, consulting the
// cache first. Cache failures are logged and ignored; the platform remains
// the source of truth.
func (s *Service) Metrics(ctx context.Context, view MetricsView) (*iqapi.Document, error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}

	key := "metrics:" + string(view)
	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return iqapi.ParseDocument([]byte(raw)), nil
	} else if err != nil {
		log.Printf("metrics cache read failed: %v", err)
	}

	doc, err := s.client.Get(ctx, "/api/metrics", iqapi.NewQuery().Set("view", string(view)))
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, doc.String(), metricsCacheTTL); err != nil {
		log.Printf("metrics cache write failed: %v", err)
	}
	return doc, nil
}

// MostTradedAgent returns the platform's most-traded-in-7-days document
// unchanged.
func (s *Service) MostTradedAgent(ctx context.Context) (*iqapi.Document, error) {
	return s.Metrics(ctx, MetricsMostTraded7d)
}

// TransactionHistory fetches a single page of the transaction feed with the
// given filters and passes the document through.
func (s *Service) TransactionHistory(ctx context.Context, p HistoryParams) (*iqapi.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	q := iqapi.NewQuery().
		Set("page", p.Page).
		Set("ticker", p.Ticker).
		Set("agentTokenContract", p.AgentTokenContract).
		Set("userId", p.UserID)
	return s.client.Get(ctx, "/api/transactions", q)
}

// AdvancedAnalytics combines the first history page with both metrics views.
// Each section is best-effort: a failed fetch leaves that section null and
// the rest of the report intact.
type AdvancedAnalytics struct {
	History    *iqapi.Document `json:"history"`
	Metrics    *iqapi.Document `json:"metrics"`
	MostTraded *iqapi.Document `json:"mostTraded7d"`
}

// AdvancedAnalytics builds the combined report for the given filters.
func (s *Service) AdvancedAnalytics(ctx context.Context, p HistoryParams) (*AdvancedAnalytics, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	report := &AdvancedAnalytics{}

	history, err := s.TransactionHistory(ctx, p)
	if err != nil {
		log.Printf("analytics: history unavailable: %v", err)
	} else {
		report.History = history
	}

	metrics, err := s.Metrics(ctx, MetricsOverall)
	if err != nil {
		log.Printf("analytics: metrics unavailable: %v", err)
	} else {
		report.Metrics = metrics
	}

	mostTraded, err := s.Metrics(ctx, MetricsMostTraded7d)
	if err != nil {
		log.Printf("analytics: mostTraded7d unavailable: %v", err)
	} else {
		report.MostTraded = mostTraded
	}

	return report, nil
}

// PredictNextActions runs the full collection and prediction pipeline.
func (s *Service) PredictNextActions(ctx context.Context, p PredictParams) (*domain.Analysis, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.analysis.PredictNextActions(ctx, p.Filters(), p.AnalysisDepth), nil
}

// Agents lists platform agents with optional sort, order, status, chainId,
// page and limit.
func (s *Service) Agents(ctx context.Context, p AgentsParams) (*iqapi.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	q := iqapi.NewQuery().
		Set("sort", p.Sort).
		Set("order", p.Order).
		Set("status", p.Status).
		Set("chainId", p.ChainID)
	if p.Page > 0 {
		q.Set("page", p.Page)
	}
	if p.Limit > 0 {
		q.Set("limit", p.Limit)
	}
	return s.client.Get(ctx, "/api/agents", q)
}

// TopAgents lists the top agents by market cap, holders or inferences.
func (s *Service) TopAgents(ctx context.Context, p TopAgentsParams) (*iqapi.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	q := iqapi.NewQuery().Set("sort", p.Sort)
	if p.Limit > 0 {
		q.Set("limit", p.Limit)
	}
	return s.client.Get(ctx, "/api/agents/top", q)
}

// AgentInfo fetches a single agent by address or ticker.
func (s *Service) AgentInfo(ctx context.Context, p AgentInfoParams) (*iqapi.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	q := iqapi.NewQuery().Set("address", p.Address).Set("ticker", p.Ticker)
	return s.client.Get(ctx, "/api/agents/info", q)
}

// AgentStats fetches agent statistics by address or ticker.
func (s *Service) AgentStats(ctx context.Context, p AgentStatsParams) (*iqapi.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	q := iqapi.NewQuery().Set("address", p.Address).Set("ticker", p.Ticker)
	if p.ExtendedStats {
		q.Set("extendedStats", "true")
	}
	return s.client.Get(ctx, "/api/agents/stats", q)
}

// Holdings fetches the agent-token holdings of a wallet.
func (s *Service) Holdings(ctx context.Context, p HoldingsParams) (*iqapi.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	q := iqapi.NewQuery().Set("address", p.Address).Set("chainId", p.ChainID)
	return s.client.Get(ctx, "/api/holdings", q)
}

// Logs fetches inference logs for an agent token contract.
func (s *Service) Logs(ctx context.Context, p LogsParams) (*iqapi.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	q := iqapi.NewQuery().Set("agentTokenContract", p.AgentTokenContract)
	if p.Page > 0 {
		q.Set("page", p.Page)
	}
	if p.Limit > 0 {
		q.Set("limit", p.Limit)
	}
	return s.client.Get(ctx, "/api/logs", q)
}

// Prices fetches USD prices via the IQ gateway.
func (s *Service) Prices(ctx context.Context, p PricesParams) (*iqapi.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, "/api/prices", iqapi.NewQuery().Set("type", p.Type))
}
