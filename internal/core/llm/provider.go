package llm

import (
	"context"
	"fmt"

	"github.com/neilberkman/chatlens/internal/core/config"
)

// Provider is the interface for LLM backends
type Provider interface {
	// GenerateText generates text from a prompt
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (e.g., "openai", "bedrock")
	Name() string
}

// NewProvider builds the provider selected by config.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIProvider(OpenAIConfig{
			Model:     cfg.Model,
			BaseURL:   cfg.BaseURL,
			APIKeyEnv: cfg.APIKeyEnv,
		})
	case "bedrock":
		return NewBedrockProvider(ctx, BedrockConfig{
			Region:  cfg.BedrockRegion,
			ModelID: cfg.Model,
			Profile: cfg.BedrockProfile,
		})
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
