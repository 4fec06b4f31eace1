// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the binaries need. Only the OpenAI key is
// required, and only when running the conversational agent.
type Config struct {
	// BaseURL of the IQ platform API (IQ_BASE_URL).
	BaseURL string

	// OpenAI settings for the conversational agent.
	OpenAIKey   string // OPENAI_API_KEY
	OpenAIModel string // OPENAI_MODEL, default "gpt-4o"

	// AnalysisDepth is the default page depth for prediction runs
	// (ANALYSIS_DEPTH, default 3).
	AnalysisDepth int

	// Optional Redis response cache.
	RedisEnabled  bool   // REDIS_ENABLED=true
	RedisAddress  string // REDIS_ADDRESS, default "localhost:6379"
	RedisUsername string // REDIS_USERNAME
	RedisPassword string // REDIS_PASSWORD
	RedisDB       int    // REDIS_DB
	RedisUseTLS   bool   // REDIS_USE_TLS=true

	// LiveFeedURL is the optional WebSocket transaction feed (IQ_WS_URL).
	LiveFeedURL string
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:       os.Getenv("IQ_BASE_URL"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
		AnalysisDepth: 3,
		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		LiveFeedURL:   os.Getenv("IQ_WS_URL"),
	}

	if v := os.Getenv("ANALYSIS_DEPTH"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil || depth < 1 {
			return nil, fmt.Errorf("invalid ANALYSIS_DEPTH: %s", v)
		}
		cfg.AnalysisDepth = depth
	}

	cfg.RedisEnabled = os.Getenv("REDIS_ENABLED") == "true"
	cfg.RedisUseTLS = os.Getenv("REDIS_USE_TLS") == "true"
	if cfg.RedisAddress == "" {
		cfg.RedisAddress = "localhost:6379"
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %s", v)
		}
		cfg.RedisDB = db
	}

	return cfg, nil
}
