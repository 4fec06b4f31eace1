package agent

import (
	"testing"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/adapters/iqapi"
	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/service"
	"github.com/iqinsightlabs/iq-agent-analytics/pkg/tools"
)

func newTestRegistry() *tools.Registry {
	client := iqapi.NewClient("http://localhost:0")
	analysis := service.NewAnalysisService(iqapi.NewTransactionFeed(client))
	return tools.NewRegistry(tools.NewService(client, analysis, nil))
}

func TestNewOpenAIAgent_Defaults(t *testing.T) {
	a := NewOpenAIAgent(&OpenAIConfig{APIKey: "sk-test"}, newTestRegistry())

	if a.config.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", a.config.Model)
	}
	if a.config.SystemPrompt == "" {
		t.Error("expected a default system prompt")
	}
	if a.config.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", a.config.Temperature)
	}
	if a.config.MaxTokens != 1000 {
		t.Errorf("MaxTokens = %d, want 1000", a.config.MaxTokens)
	}
}

func TestNewOpenAIAgent_ToolDefinitions(t *testing.T) {
	registry := newTestRegistry()
	a := NewOpenAIAgent(&OpenAIConfig{APIKey: "sk-test"}, registry)

	if len(a.defs) != len(registry.Tools()) {
		t.Fatalf("registered %d tool definitions, want %d", len(a.defs), len(registry.Tools()))
	}
	for i, tool := range registry.Tools() {
		def := a.defs[i].Function
		if def.Name != tool.Name {
			t.Errorf("definition %d = %q, want %q", i, def.Name, tool.Name)
		}
		if def.Parameters == nil {
			t.Errorf("definition %q has no parameter schema", def.Name)
		}
	}
}
