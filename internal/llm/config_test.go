package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, b := range envBindings {
		t.Setenv(b.key, "")
	}
	for _, k := range []string{"HAMEXAM_LLM_TIMEOUT", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)

	_, ok := ConfigFromEnv()
	assert.False(t, ok)

	t.Setenv("HAMEXAM_LLM_PROVIDER", ProviderOpenAI)
	t.Setenv("HAMEXAM_OPENAI_API_KEY", "sk-test")
	t.Setenv("HAMEXAM_OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("HAMEXAM_LLM_TIMEOUT", "5s")

	cfg, ok := ConfigFromEnv()
	require.True(t, ok)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestDiscoverConfig(t *testing.T) {
	clearLLMEnv(t)

	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "o-key", cfg.OpenAI.APIKey)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate())

	cfg.Anthropic.APIKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "carrier-pigeon"
	assert.Error(t, cfg.Validate())

	cfg.Provider = ProviderMock
	assert.NoError(t, cfg.Validate())
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Provider = ProviderNone
	_, err := NewProvider(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, ErrDisabled)

	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg.Provider = ProviderAnthropic
	cfg.Anthropic.APIKey = "k"
	p, err = NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())

	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "k"
	p, err = NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())
}

func TestNewProviderFromEnvDisabled(t *testing.T) {
	clearLLMEnv(t)
	_, err := NewProviderFromEnv(context.Background(), nil)
	assert.ErrorIs(t, err, ErrDisabled)
}
