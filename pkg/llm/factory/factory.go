package factory

import (
	"fmt"

	"hr-assistant-be/internal/config"
	"hr-assistant-be/pkg/llm"
	"hr-assistant-be/pkg/llm/anthropic"
	"hr-assistant-be/pkg/llm/gemini"
	"hr-assistant-be/pkg/llm/openai"
)

// Registry resolves a provider by the caller-facing selector
// ("claude" | "gpt" | "gemini"), falling back to the configured default.
type Registry struct {
	providers       map[string]llm.LLMProvider
	defaultSelector string
}

func NewRegistry(cfg *config.Config) (*Registry, error) {
	providers := map[string]llm.LLMProvider{
		"gemini": gemini.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.GeminiModel),
		"claude": anthropic.NewAnthropicProvider(cfg.Keys.Anthropic, cfg.Ai.ClaudeModel),
		"gpt":    openai.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.GPTModel),
	}

	if _, ok := providers[cfg.Ai.LLMProvider]; !ok {
		return nil, fmt.Errorf("unsupported default LLM provider: %s", cfg.Ai.LLMProvider)
	}

	return &Registry{
		providers:       providers,
		defaultSelector: cfg.Ai.LLMProvider,
	}, nil
}

// Resolve returns the provider for the given selector and the selector
// actually used (for provenance on generated documents).
func (r *Registry) Resolve(selector string) (llm.LLMProvider, string) {
	if selector == "" {
		selector = r.defaultSelector
	}
	provider, ok := r.providers[selector]
	if !ok {
		return r.providers[r.defaultSelector], r.defaultSelector
	}
	return provider, selector
}
