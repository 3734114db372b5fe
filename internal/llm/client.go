package llm

import (
	"context"
)

// ChatClient is a provider-agnostic chat completion. The system message
// may be empty; temperature is set per call because classification runs
// cooler than query generation.
type ChatClient interface {
	Chat(ctx context.Context, system, user string, temperature float32) (string, error)
}
