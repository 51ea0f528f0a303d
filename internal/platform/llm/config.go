package llm

import "fmt"

const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"

	GroqBaseURL      = "https://api.groq.com/openai/v1"
	DefaultGroqModel = "llama3-8b-8192"
)

// Config selects and configures one provider. Model and BaseURL apply to the
// selected provider; an empty Model picks that provider's default.
type Config struct {
	Provider string `mapstructure:"llm_provider"`
	Model    string `mapstructure:"llm_model"`
	BaseURL  string `mapstructure:"llm_base_url"`

	GroqAPIKey      string `mapstructure:"groq_api_key"`
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`

	MaxTokens int `mapstructure:"llm_max_tokens"`
}

func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGroq:
		if c.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required for the groq provider")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown llm provider: %q", c.Provider)
	}
	return nil
}
