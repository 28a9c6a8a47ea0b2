package llm

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ProviderConfig selects and configures a completion provider.
type ProviderConfig struct {
	// Provider is "anthropic" or "openai".
	Provider string
	APIKey   string
	Model    string
}

// NewClient builds the configured provider client.
func NewClient(cfg ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicClient(cfg.APIKey, cfg.Model)
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai api key is required")
		}
		return NewOpenAIClient(openai.NewClient(cfg.APIKey), cfg.Model)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
