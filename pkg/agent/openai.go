// Package agent runs the analytics tool set behind an OpenAI-powered
// conversational loop. Natural-language understanding is fully delegated to
// the model; this package only registers tool schemas and dispatches the
// resulting tool calls.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/iqinsightlabs/iq-agent-analytics/pkg/tools"
)

// maxToolRounds caps how many completion/tool-call cycles one task may use.
const maxToolRounds = 5

// OpenAIConfig configures the OpenAI-backed agent.
type OpenAIConfig struct {
	// Required: your OpenAI API key.
	APIKey string

	// Optional: model name (defaults to "gpt-4o").
	Model string

	// Optional: system prompt (defaults to the IQ analytics assistant).
	SystemPrompt string

	// Optional: temperature 0.0-2.0 (defaults to 0.7).
	Temperature float32

	// Optional: max tokens per response (defaults to 1000).
	MaxTokens int
}

const defaultSystemPrompt = `You are an analytics assistant for the IQ agent trading platform.

You answer questions about agent tokens, trading activity and market patterns using the tools available to you:
- use get_most_traded_agent for "what's hot" style questions
- use get_transaction_history for raw trade listings
- use get_advanced_analytics for a combined market overview
- use predict_next_actions for trading-pattern analysis and next-action forecasts
- use the remaining tools for agent listings, info, stats, holdings, logs and prices

Tool responses are JSON documents or plain-text error explanations. Summarize them for the user; do not invent data the tools did not return.`

// OpenAIAgent answers tasks by letting the model call the registered tools.
type OpenAIAgent struct {
	client   *openai.Client
	config   *OpenAIConfig
	registry *tools.Registry
	defs     []openai.Tool
}

// NewOpenAIAgent builds the agent over a tool registry.
func NewOpenAIAgent(config *OpenAIConfig, registry *tools.Registry) *OpenAIAgent {
	if config.Model == "" {
		config.Model = "gpt-4o"
	}
	if config.SystemPrompt == "" {
		config.SystemPrompt = defaultSystemPrompt
	}
	if config.Temperature == 0 {
		config.Temperature = 0.7
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 1000
	}

	registered := registry.Tools()
	defs := make([]openai.Tool, 0, len(registered))
	for _, t := range registered {
		defs = append(defs, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	return &OpenAIAgent{
		client:   openai.NewClient(config.APIKey),
		config:   config,
		registry: registry,
		defs:     defs,
	}
}

// ProcessTask answers one task, dispatching tool calls until the model
// produces a final message.
func (a *OpenAIAgent) ProcessTask(ctx context.Context, task string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: a.config.SystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: task},
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       a.config.Model,
			Messages:    messages,
			Tools:       a.defs,
			Temperature: a.config.Temperature,
			MaxTokens:   a.config.MaxTokens,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no completion choices returned")
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			log.Printf("🔧 Tool call: %s %s", call.Function.Name, call.Function.Arguments)
			result := a.registry.Invoke(ctx, call.Function.Name, json.RawMessage(call.Function.Arguments))
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("task used more than %d tool rounds without a final answer", maxToolRounds)
}
