package ai

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMock returns a generator used when no LLM credentials are configured.
// It crudely mimics the grounding policy so the rest of the stack can be
// exercised end to end in development.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Complete(ctx context.Context, prompt string) (string, error) {
	low := strings.ToLower(prompt)
	switch {
	case strings.Contains(low, "thank"):
		return "You're welcome!", nil
	case strings.Contains(low, "hello"), strings.Contains(low, "hi "):
		return "Hello! How can I help you today?", nil
	case strings.Contains(low, "context:\n\n"):
		// no retrieved context at all
		return "I don't know", nil
	default:
		return "(mock) Please configure LLM_API_KEY for real answers.", nil
	}
}
