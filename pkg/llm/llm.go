package llm

import (
	"context"
	"errors"
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var (
	ErrNoAPIKey  = errors.New("llm api key is empty")
	ErrNoContent = errors.New("no content returned by model")
)
