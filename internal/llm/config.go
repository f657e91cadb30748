package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is "anthropic", "openai", "gemini" or "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // for OpenAI-compatible gateways
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// DefaultConfig returns the defaults used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     4 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv overlays CORTEX_* environment variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.Provider, "CORTEX_LLM_PROVIDER")
	set(&cfg.Anthropic.APIKey, "CORTEX_ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "CORTEX_ANTHROPIC_MODEL")
	set(&cfg.OpenAI.APIKey, "CORTEX_OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "CORTEX_OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "CORTEX_OPENAI_BASE_URL")
	set(&cfg.Gemini.APIKey, "CORTEX_GEMINI_API_KEY")
	set(&cfg.Gemini.Model, "CORTEX_GEMINI_MODEL")
	return cfg
}

// Validate reports a missing API key for the selected provider.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case "anthropic":
		key, env = c.Anthropic.APIKey, "CORTEX_ANTHROPIC_API_KEY"
	case "openai":
		key, env = c.OpenAI.APIKey, "CORTEX_OPENAI_API_KEY"
	case "gemini":
		key, env = c.Gemini.APIKey, "CORTEX_GEMINI_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
