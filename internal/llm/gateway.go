package llm

import (
	"net/http"
)

// GatewayProvider is the zero-configuration fallback: an OpenAI-compatible
// AI gateway that routes by model name. It works without any credential; when
// the environment carries a gateway key it is forwarded, otherwise no
// Authorization header is sent and the gateway's ambient routing applies.
type GatewayProvider struct {
	*OpenAIProvider
}

func NewGatewayProvider(apiKey, model string) *GatewayProvider {
	if model == "" {
		model = "openai/gpt-4o-mini"
	}
	return &GatewayProvider{
		OpenAIProvider: &OpenAIProvider{
			name:    "gateway",
			apiKey:  apiKey,
			model:   model,
			baseURL: "https://ai-gateway.vercel.sh/v1",
			httpClient: &http.Client{
				Timeout: requestTimeout,
			},
		},
	}
}
