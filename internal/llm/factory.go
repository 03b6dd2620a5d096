package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/lingo/internal/store"
)

// NewProvider creates a text Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *slog.Logger) (Provider, error) {
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

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo, logger)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewImageProvider creates an ImageProvider for providers that offer one.
// Anthropic and OpenRouter return ErrImagesUnsupported; the lesson then
// renders without illustrations.
func NewImageProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *slog.Logger) (ImageProvider, error) {
	var base ImageProvider

	switch cfg.Provider {
	case "gemini":
		p, err := NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini images: %w", err)
		}
		base = p.Images()
	case "openai":
		p, err := NewOpenAIProvider(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openai images: %w", err)
		}
		base = p.Images()
	case "mock":
		return NewMockImageProvider(), nil
	case "anthropic", "openrouter":
		return nil, ErrImagesUnsupported
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}

	return WithImageLogging(base, cfg.Provider, eventRepo, logger), nil
}
