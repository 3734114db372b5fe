package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/querif/querif/internal/config"
)

// NewClient builds a chat client for a named profile. Missing credentials
// fail here, at construction time, never later.
func NewClient(ctx context.Context, name string, cfg config.Profile) (ChatClient, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "", "openai":
		if cfg.BaseURL == "" || cfg.APIKey == "" {
			prefix := strings.ToUpper(name)
			return nil, fmt.Errorf("%s_API and %s_API_KEY must be set for profile %s", prefix, prefix, name)
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "claude":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("api key must be set for claude profile %s", name)
		}
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("api key must be set for gemini profile %s", name)
		}
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)

	case "ollama":
		// Ollama speaks the OpenAI-compatible API under /v1. The key is
		// ignored by Ollama but required by the client config.
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = strings.TrimRight(baseURL, "/") + "/v1"
		}
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		return NewOpenAIClient(apiKey, cfg.Model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
