package ai

import "context"

// Client generates an answer for an assembled prompt. One external call per
// invocation, no retries, no streaming.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
