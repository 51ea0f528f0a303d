package llm

import (
	"context"
	"fmt"

	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

// NewProvider builds the configured provider wrapped with call logging.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderGroq:
		base, err = NewGroqProvider(cfg.GroqAPIKey, cfg.Model, cfg.BaseURL, cfg.MaxTokens)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(OpenAIConfig{
			Name:      ProviderOpenAI,
			APIKey:    cfg.OpenAIAPIKey,
			Model:     resolveModel(cfg.Model, openaiModels, "gpt-4o-mini"),
			BaseURL:   cfg.BaseURL,
			MaxTokens: cfg.MaxTokens,
		})
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.BaseURL, cfg.MaxTokens)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.Model, cfg.BaseURL, cfg.MaxTokens)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithLogging(base, log), nil
}
