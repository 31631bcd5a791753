package llm

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
	ProviderNone       = "none"
)

// ErrDisabled is returned by NewProviderFromEnv when no provider is set up.
var ErrDisabled = errors.New("LLM provider not configured")

// Config selects and configures a provider.
type Config struct {
	// Provider is one of the Provider* names.
	Provider string

	Anthropic  ProviderConfig
	OpenAI     ProviderConfig
	Gemini     ProviderConfig
	OpenRouter ProviderConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// ProviderConfig holds the credentials and model of one provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string // OpenAI-compatible endpoints only
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns small, inexpensive models for every provider.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-exp", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// envBinding ties one HAMEXAM_* variable to a Config field.
type envBinding struct {
	key string
	set func(*Config, string)
}

var envBindings = []envBinding{
	{"HAMEXAM_LLM_PROVIDER", func(c *Config, v string) { c.Provider = v }},
	{"HAMEXAM_ANTHROPIC_API_KEY", func(c *Config, v string) { c.Anthropic.APIKey = v }},
	{"HAMEXAM_ANTHROPIC_MODEL", func(c *Config, v string) { c.Anthropic.Model = v }},
	{"HAMEXAM_OPENAI_API_KEY", func(c *Config, v string) { c.OpenAI.APIKey = v }},
	{"HAMEXAM_OPENAI_MODEL", func(c *Config, v string) { c.OpenAI.Model = v }},
	{"HAMEXAM_OPENAI_BASE_URL", func(c *Config, v string) { c.OpenAI.BaseURL = v }},
	{"HAMEXAM_GEMINI_API_KEY", func(c *Config, v string) { c.Gemini.APIKey = v }},
	{"HAMEXAM_GEMINI_MODEL", func(c *Config, v string) { c.Gemini.Model = v }},
	{"HAMEXAM_OPENROUTER_API_KEY", func(c *Config, v string) { c.OpenRouter.APIKey = v }},
	{"HAMEXAM_OPENROUTER_MODEL", func(c *Config, v string) { c.OpenRouter.Model = v }},
}

// ConfigFromEnv overlays HAMEXAM_* variables on DefaultConfig. The bool
// reports whether any of them was set.
func ConfigFromEnv() (Config, bool) {
	cfg := DefaultConfig()
	found := false
	for _, b := range envBindings {
		if v := os.Getenv(b.key); v != "" {
			b.set(&cfg, v)
			found = true
		}
	}
	if v := os.Getenv("HAMEXAM_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg, found
}

// DiscoverConfig looks for the providers' standard API key variables
// (Gemini, OpenAI, Anthropic, OpenRouter, in that order) and returns a
// Config for the first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	candidates := []struct {
		env      string
		provider string
		target   *ProviderConfig
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter},
	}
	for _, c := range candidates {
		if k := os.Getenv(c.env); k != "" {
			cfg.Provider = c.provider
			c.target.APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "HAMEXAM_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "HAMEXAM_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "HAMEXAM_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "HAMEXAM_OPENROUTER_API_KEY"
	case ProviderMock, ProviderNone:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
