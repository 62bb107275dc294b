package llm

import (
	"context"
	"fmt"

	"github.com/adhikary/tutorgraph/internal/logger"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware (caller -> retry -> logging -> base).
func NewProvider(ctx context.Context, cfg Config, rec RequestRecorder, log *logger.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, rec, log)
	return WithRetry(logged, cfg.Retry), nil
}
