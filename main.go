package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/adapters/iqapi"
	"github.com/iqinsightlabs/iq-agent-analytics/internal/config"
	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/service"
	"github.com/iqinsightlabs/iq-agent-analytics/pkg/agent"
	"github.com/iqinsightlabs/iq-agent-analytics/pkg/cache"
	"github.com/iqinsightlabs/iq-agent-analytics/pkg/tools"
	"github.com/iqinsightlabs/iq-agent-analytics/pkg/types"
	"github.com/iqinsightlabs/iq-agent-analytics/pkg/version"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	client := iqapi.NewClient(cfg.BaseURL)
	analysis := service.NewAnalysisService(iqapi.NewTransactionFeed(client))

	agentCache := buildCache(cfg)
	defer agentCache.Close()

	registry := tools.NewRegistry(tools.NewService(client, analysis, agentCache))

	var handler types.AgentHandler = agent.NewOpenAIAgent(&agent.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.OpenAIModel,
	}, registry)

	log.Printf("🚀 IQ analytics agent %s ready (%d tools)", version.Version(), len(registry.Tools()))

	ctx := context.Background()

	// One-shot mode: answer the prompt given on the command line.
	if len(os.Args) > 1 {
		answer(ctx, handler, strings.Join(os.Args[1:], " "))
		return
	}

	// Interactive mode.
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		task := strings.TrimSpace(scanner.Text())
		if task != "" {
			answer(ctx, handler, task)
		}
		fmt.Print("> ")
	}
}

func answer(ctx context.Context, handler types.AgentHandler, task string) {
	result, err := handler.ProcessTask(ctx, task)
	if err != nil {
		log.Printf("⚠️ Task failed: %v", err)
		return
	}
	fmt.Println(result)
}

// buildCache wires the optional Redis response cache, falling back to a
// no-op cache when Redis is disabled or unreachable.
func buildCache(cfg *config.Config) cache.AgentCache {
	if !cfg.RedisEnabled {
		return &cache.NoOpCache{}
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Address:   cfg.RedisAddress,
		Username:  cfg.RedisUsername,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		KeyPrefix: "iq:analytics:",
		UseTLS:    cfg.RedisUseTLS,
	})
	if err != nil {
		log.Printf("⚠️ Failed to initialize Redis cache: %v (continuing without cache)", err)
		return &cache.NoOpCache{}
	}

	log.Printf("🗄️  Redis cache initialized at %s", cfg.RedisAddress)
	return redisCache
}
