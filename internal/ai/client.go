package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"go-jobfinder/internal/config"
)

// Client is the single completion surface the cleaning chains depend on.
// Implementations must be safe for concurrent use.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// maxPromptRunes caps what we send to the model; job descriptions can be
// enormous and everything the chains need is near the top.
const maxPromptRunes = 12000

type langchainClient struct {
	model       llms.Model
	temperature float64
	maxTokens   int
}

// NewClient builds a Client for the configured provider. Ollama is the
// default local provider; openai needs an API key.
func NewClient(cfg config.LLM) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "ollama":
		model, err := ollama.New(
			ollama.WithModel(cfg.Model),
			ollama.WithServerURL(cfg.BaseURL),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to init ollama client: %w", err)
		}
		return &langchainClient{model: model, temperature: cfg.Temperature, maxTokens: cfg.MaxTokens}, nil
	case "openai":
		opts := []openai.Option{
			openai.WithModel(cfg.Model),
			openai.WithToken(cfg.APIKey),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		model, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to init openai client: %w", err)
		}
		return &langchainClient{model: model, temperature: cfg.Temperature, maxTokens: cfg.MaxTokens}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

func (c *langchainClient) Generate(ctx context.Context, prompt string) (string, error) {
	if runes := []rune(prompt); len(runes) > maxPromptRunes {
		prompt = string(runes[:maxPromptRunes])
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("llm generation failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}
