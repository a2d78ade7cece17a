package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIProvider implements Provider against any OpenAI-compatible
// endpoint (OpenAI itself, or a local server speaking the same API).
type OpenAIProvider struct {
	llm   *openai.LLM
	model string
}

// OpenAIConfig holds configuration for the OpenAI-compatible provider
type OpenAIConfig struct {
	Model     string // defaults to gpt-4o-mini
	BaseURL   string // custom endpoint (optional)
	APIKeyEnv string // env var holding the key, defaults to OPENAI_API_KEY
}

// NewOpenAIProvider creates a new OpenAI-compatible provider
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = "OPENAI_API_KEY"
	}

	token := os.Getenv(cfg.APIKeyEnv)
	if token == "" {
		return nil, fmt.Errorf("no API key found in $%s", cfg.APIKeyEnv)
	}

	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(token),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIProvider{llm: client, model: cfg.Model}, nil
}

// GenerateText implements Provider
func (p *OpenAIProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, p.llm, prompt,
		llms.WithMaxTokens(1024),
		llms.WithTemperature(0.3),
	)
	if err != nil {
		return "", fmt.Errorf("openai generation failed: %w", err)
	}
	return response, nil
}

// Name implements Provider
func (p *OpenAIProvider) Name() string {
	return "openai"
}
