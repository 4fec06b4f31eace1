// Package types holds the small shared contracts of the SDK.
package types

import (
	"context"
	"errors"
)

// AgentHandler is implemented by anything that can answer a user task. The
// OpenAI-backed agent is the stock implementation; embedders can supply their
// own to route tasks through a different language-model framework.
type AgentHandler interface {
	// ProcessTask answers a single natural-language task.
	ProcessTask(ctx context.Context, task string) (string, error)
}

// ErrNotImplemented is returned by handlers that do not support a task.
var ErrNotImplemented = errors.New("not implemented")
