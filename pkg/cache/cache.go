// Package cache provides optional response caching for the analytics tools.
// Platform-wide metrics change slowly, so repeated tool invocations within a
// short window can reuse the last response instead of hitting the API again.
package cache

import (
	"context"
	"time"
)

// AgentCache is the caching interface the tool layer depends on. Misses are
// not errors: Get returns ok=false for both "never stored" and "expired".
type AgentCache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Close() error
}

// NoOpCache is used when caching is disabled. Every lookup misses.
type NoOpCache struct{}

func (*NoOpCache) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (*NoOpCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func (*NoOpCache) Close() error {
	return nil
}
