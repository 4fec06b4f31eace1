package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Handler executes one tool call with raw JSON arguments.
type Handler func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Tool describes a single callable operation: its name, the description and
// JSON schema handed to the language-model layer, and the handler behind it.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{}

	// failure prefixes the error string returned to the caller when the
	// handler fails, e.g. "Failed to fetch data".
	failure string
	handler Handler
}

// Registry holds every registered tool and is the boundary where errors turn
// into strings: Invoke always produces a response, never a panic or a bare
// error, even under total remote failure.
type Registry struct {
	tools  []*Tool
	byName map[string]*Tool
}

// NewRegistry registers the full tool set over the given service.
func NewRegistry(s *Service) *Registry {
	r := &Registry{byName: make(map[string]*Tool)}

	r.register(&Tool{
		Name:        "get_most_traded_agent",
		Description: "Get the most traded agent on the IQ platform over the last 7 days",
		Parameters:  objectSchema(nil),
		failure:     "Failed to fetch metrics",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			return s.MostTradedAgent(ctx)
		},
	})

	r.register(&Tool{
		Name:        "get_transaction_history",
		Description: "Get one page of the IQ platform transaction history, optionally filtered by ticker, agent token contract or user",
		Parameters: objectSchema(map[string]interface{}{
			"ticker":             stringProp("Agent token ticker to filter by"),
			"agentTokenContract": stringProp("Agent token contract address to filter by"),
			"userId":             stringProp("User identifier to filter by"),
			"page":               intProp("Page number, starting at 1"),
		}),
		failure: "Failed to fetch data",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p HistoryParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.TransactionHistory(ctx, p)
		},
	})

	r.register(&Tool{
		Name:        "get_advanced_analytics",
		Description: "Combined report: recent transaction history plus overall and most-traded-7d platform metrics",
		Parameters: objectSchema(map[string]interface{}{
			"ticker":             stringProp("Agent token ticker to filter history by"),
			"agentTokenContract": stringProp("Agent token contract address to filter history by"),
			"userId":             stringProp("User identifier to filter history by"),
		}),
		failure: "Failed to run analytics",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p HistoryParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.AdvancedAnalytics(ctx, p)
		},
	})

	r.register(&Tool{
		Name:        "predict_next_actions",
		Description: "Analyze recent trading patterns and predict the likely next market action for investment-decision support",
		Parameters: objectSchema(map[string]interface{}{
			"ticker":             stringProp("Agent token ticker to analyze"),
			"agentTokenContract": stringProp("Agent token contract address to analyze"),
			"userId":             stringProp("Restrict the analysis to one user's trades"),
			"analysisDepth":      intProp(fmt.Sprintf("How many feed pages to analyze, 1-%d (default %d)", MaxAnalysisDepth, DefaultAnalysisDepth)),
		}),
		failure: "Failed to analyze transactions",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p PredictParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.PredictNextActions(ctx, p)
		},
	})

	r.register(&Tool{
		Name:        "get_agents",
		Description: "List agents with optional sort, order, status, chainId, page, limit",
		Parameters: objectSchema(map[string]interface{}{
			"sort":    enumProp("Sort key", "latest", "marketCap", "holders", "inferences"),
			"order":   enumProp("Sort order", "asc", "desc"),
			"status":  enumProp("Agent status", "alive", "latent"),
			"chainId": stringProp("Chain identifier"),
			"page":    intProp("Page number, starting at 1"),
			"limit":   intProp("Results per page, 1-100"),
		}),
		failure: "Failed to fetch agents",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p AgentsParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.Agents(ctx, p)
		},
	})

	r.register(&Tool{
		Name:        "get_top_agents",
		Description: "Get top agents by market cap, holders, or inferences",
		Parameters: objectSchema(map[string]interface{}{
			"sort":  enumProp("Ranking key", "mcap", "holders", "inferences"),
			"limit": intProp("Results to return, 1-100"),
		}),
		failure: "Failed to fetch top agents",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p TopAgentsParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.TopAgents(ctx, p)
		},
	})

	r.register(&Tool{
		Name:        "get_agent_info",
		Description: "Get agent info by address or ticker (exactly one of the two)",
		Parameters: objectSchema(map[string]interface{}{
			"address": stringProp("Agent token contract address"),
			"ticker":  stringProp("Agent token ticker"),
		}),
		failure: "Failed to fetch agent info",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p AgentInfoParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.AgentInfo(ctx, p)
		},
	})

	r.register(&Tool{
		Name:        "get_agent_stats",
		Description: "Get agent stats by address or ticker; extendedStats only allowed with address",
		Parameters: objectSchema(map[string]interface{}{
			"address":       stringProp("Agent token contract address"),
			"ticker":        stringProp("Agent token ticker"),
			"extendedStats": boolProp("Include extended statistics (address lookups only)"),
		}),
		failure: "Failed to fetch agent stats",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p AgentStatsParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.AgentStats(ctx, p)
		},
	})

	r.register(&Tool{
		Name:        "get_holdings",
		Description: "Get agent-token holdings for a wallet address",
		Parameters: objectSchema(map[string]interface{}{
			"address": stringProp("Wallet address"),
			"chainId": stringProp("Chain identifier (default " + DefaultChainID + ")"),
		}, "address"),
		failure: "Failed to fetch holdings",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p HoldingsParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.Holdings(ctx, p)
		},
	})

	r.register(&Tool{
		Name:        "get_logs",
		Description: "Get inference logs for an agent by token contract",
		Parameters: objectSchema(map[string]interface{}{
			"agentTokenContract": stringProp("Agent token contract address"),
			"page":               intProp("Page number, starting at 1"),
			"limit":              intProp("Results per page, 1-100"),
		}, "agentTokenContract"),
		failure: "Failed to fetch logs",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p LogsParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.Logs(ctx, p)
		},
	})

	r.register(&Tool{
		Name:        "get_prices",
		Description: "Get USD prices via the IQ gateway",
		Parameters: objectSchema(map[string]interface{}{
			"type": enumProp("Price set to fetch", "eth", "frax", "all"),
		}),
		failure: "Failed to fetch prices",
		handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var p PricesParams
			if err := unmarshalArgs(args, &p); err != nil {
				return nil, err
			}
			return s.Prices(ctx, p)
		},
	})

	return r
}

func (r *Registry) register(t *Tool) {
	r.tools = append(r.tools, t)
	r.byName[t.Name] = t
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []*Tool {
	return r.tools
}

// Invoke runs one tool and always returns a string: compact JSON on success,
// a human-readable explanation on any failure.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) string {
	t, ok := r.byName[name]
	if !ok {
		return fmt.Sprintf("Unknown tool: %s", name)
	}

	result, err := t.handler(ctx, args)
	if err != nil {
		return fmt.Sprintf("%s: %v", t.failure, err)
	}

	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%s: %v", t.failure, err)
	}
	return string(out)
}

func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	if props == nil {
		props = map[string]interface{}{}
	}
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func intProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

func boolProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "boolean", "description": description}
}

func enumProp(description string, values ...string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description, "enum": values}
}
