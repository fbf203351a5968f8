package llm

import (
	"net/http"
)

// OpenRouterProvider routes requests through the OpenRouter gateway, which
// speaks the OpenAI chat-completions wire format with vendor-prefixed model
// names ("openai/gpt-4o-mini").
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(apiKey, model string) *OpenRouterProvider {
	if model == "" {
		model = "openai/gpt-4o-mini"
	}
	return &OpenRouterProvider{
		OpenAIProvider: &OpenAIProvider{
			name:    "openrouter",
			apiKey:  apiKey,
			model:   model,
			baseURL: "https://openrouter.ai/api/v1",
			// OpenRouter uses these for app attribution and ranking.
			extraHeaders: map[string]string{
				"HTTP-Referer": "https://github.com/lkoehl/propscribe",
				"X-Title":      "propscribe",
			},
			httpClient: &http.Client{
				Timeout: requestTimeout,
			},
		},
	}
}
