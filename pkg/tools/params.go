package tools

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/service"
)

// Analysis depth bounds for predict_next_actions.
const (
	DefaultAnalysisDepth = service.DefaultPageDepth
	MaxAnalysisDepth     = service.MaxPageDepth
)

// DefaultChainID is the Fraxtal chain, where agent tokens live.
const DefaultChainID = "252"

// MetricsView selects which platform metrics document to fetch.
type MetricsView string

const (
	MetricsOverall      MetricsView = "overall"
	MetricsMostTraded7d MetricsView = "mostTraded7d"
)

// Validate checks the view against the values the platform accepts.
func (v MetricsView) Validate() error {
	switch v {
	case MetricsOverall, MetricsMostTraded7d:
		return nil
	}
	return fmt.Errorf("invalid metrics view %q (want overall or mostTraded7d)", string(v))
}

// HistoryParams configures a single-page transaction history fetch.
// Page defaults to 1.
type HistoryParams struct {
	Ticker             string `json:"ticker,omitempty"`
	AgentTokenContract string `json:"agentTokenContract,omitempty"`
	UserID             string `json:"userId,omitempty"`
	Page               int    `json:"page,omitempty"`
}

// Validate normalizes defaults and rejects malformed parameters before they
// enter the pipeline.
func (p *HistoryParams) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("page must be at least 1, got %d", p.Page)
	}
	if p.Page == 0 {
		p.Page = 1
	}
	if err := validateContract(p.AgentTokenContract); err != nil {
		return err
	}
	return nil
}

// Filters returns the feed filters carried by these params.
func (p HistoryParams) Filters() domain.Filters {
	return domain.Filters{
		Ticker:             p.Ticker,
		AgentTokenContract: p.AgentTokenContract,
		UserID:             p.UserID,
	}
}

// PredictParams configures a full prediction run. AnalysisDepth defaults to
// DefaultAnalysisDepth pages and may not exceed MaxAnalysisDepth.
type PredictParams struct {
	Ticker             string `json:"ticker,omitempty"`
	AgentTokenContract string `json:"agentTokenContract,omitempty"`
	UserID             string `json:"userId,omitempty"`
	AnalysisDepth      int    `json:"analysisDepth,omitempty"`
}

func (p *PredictParams) Validate() error {
	if p.AnalysisDepth < 0 || p.AnalysisDepth > MaxAnalysisDepth {
		return fmt.Errorf("analysisDepth must be between 1 and %d, got %d", MaxAnalysisDepth, p.AnalysisDepth)
	}
	if p.AnalysisDepth == 0 {
		p.AnalysisDepth = DefaultAnalysisDepth
	}
	if err := validateContract(p.AgentTokenContract); err != nil {
		return err
	}
	return nil
}

// Filters returns the feed filters carried by these params.
func (p PredictParams) Filters() domain.Filters {
	return domain.Filters{
		Ticker:             p.Ticker,
		AgentTokenContract: p.AgentTokenContract,
		UserID:             p.UserID,
	}
}

// AgentsParams configures the agents listing passthrough.
type AgentsParams struct {
	Sort    string `json:"sort,omitempty"`   // latest, marketCap, holders, inferences
	Order   string `json:"order,omitempty"`  // asc, desc
	Status  string `json:"status,omitempty"` // alive, latent
	ChainID string `json:"chainId,omitempty"`
	Page    int    `json:"page,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

func (p *AgentsParams) Validate() error {
	if err := oneOf("sort", p.Sort, "latest", "marketCap", "holders", "inferences"); err != nil {
		return err
	}
	if err := oneOf("order", p.Order, "asc", "desc"); err != nil {
		return err
	}
	if err := oneOf("status", p.Status, "alive", "latent"); err != nil {
		return err
	}
	return validatePageLimit(p.Page, p.Limit)
}

// TopAgentsParams configures the top-agents passthrough.
type TopAgentsParams struct {
	Sort  string `json:"sort,omitempty"` // mcap, holders, inferences
	Limit int    `json:"limit,omitempty"`
}

func (p *TopAgentsParams) Validate() error {
	if err := oneOf("sort", p.Sort, "mcap", "holders", "inferences"); err != nil {
		return err
	}
	return validatePageLimit(0, p.Limit)
}

// AgentInfoParams looks up one agent by address or ticker, never both.
type AgentInfoParams struct {
	Address string `json:"address,omitempty"`
	Ticker  string `json:"ticker,omitempty"`
}

func (p *AgentInfoParams) Validate() error {
	return validateAddressXorTicker(p.Address, p.Ticker)
}

// AgentStatsParams fetches agent statistics. ExtendedStats is only available
// when looking up by address.
type AgentStatsParams struct {
	Address       string `json:"address,omitempty"`
	Ticker        string `json:"ticker,omitempty"`
	ExtendedStats bool   `json:"extendedStats,omitempty"`
}

func (p *AgentStatsParams) Validate() error {
	if err := validateAddressXorTicker(p.Address, p.Ticker); err != nil {
		return err
	}
	if p.ExtendedStats && p.Address == "" {
		return fmt.Errorf("extendedStats is only allowed with address")
	}
	return nil
}

// HoldingsParams fetches the agent-token holdings of a wallet.
// ChainID defaults to DefaultChainID.
type HoldingsParams struct {
	Address string `json:"address"`
	ChainID string `json:"chainId,omitempty"`
}

func (p *HoldingsParams) Validate() error {
	if p.Address == "" {
		return fmt.Errorf("address is required")
	}
	if !common.IsHexAddress(p.Address) {
		return fmt.Errorf("invalid wallet address: %s", p.Address)
	}
	if p.ChainID == "" {
		p.ChainID = DefaultChainID
	}
	return nil
}

// LogsParams fetches inference logs for an agent token contract.
type LogsParams struct {
	AgentTokenContract string `json:"agentTokenContract"`
	Page               int    `json:"page,omitempty"`
	Limit              int    `json:"limit,omitempty"`
}

func (p *LogsParams) Validate() error {
	if p.AgentTokenContract == "" {
		return fmt.Errorf("agentTokenContract is required")
	}
	if err := validateContract(p.AgentTokenContract); err != nil {
		return err
	}
	return validatePageLimit(p.Page, p.Limit)
}

// PricesParams fetches USD prices via the IQ gateway.
type PricesParams struct {
	Type string `json:"type,omitempty"` // eth, frax, all
}

func (p *PricesParams) Validate() error {
	return oneOf("type", p.Type, "eth", "frax", "all")
}

func validateContract(addr string) error {
	if addr != "" && !common.IsHexAddress(addr) {
		return fmt.Errorf("invalid agent token contract address: %s", addr)
	}
	return nil
}

func validateAddressXorTicker(address, ticker string) error {
	if (address == "") == (ticker == "") {
		return fmt.Errorf("provide either address or ticker, not both")
	}
	if address != "" && !common.IsHexAddress(address) {
		return fmt.Errorf("invalid agent address: %s", address)
	}
	return nil
}

func validatePageLimit(page, limit int) error {
	if page < 0 {
		return fmt.Errorf("page must be at least 1, got %d", page)
	}
	if limit < 0 || limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100, got %d", limit)
	}
	return nil
}

func oneOf(name, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (want one of %v)", name, value, allowed)
}
