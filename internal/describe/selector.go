package describe

import (
	"github.com/lkoehl/propscribe/internal/config"
	"github.com/lkoehl/propscribe/internal/llm"
)

// ProviderKind tags which upstream service a request is routed to.
type ProviderKind int

const (
	// ProviderAlternate is the OpenRouter gateway; it wins whenever its key
	// is configured, regardless of the primary key.
	ProviderAlternate ProviderKind = iota
	// ProviderPrimary is the OpenAI API, used when only its key is set.
	ProviderPrimary
	// ProviderDefault is the zero-configuration AI gateway fallback.
	ProviderDefault
)

func (k ProviderKind) String() string {
	switch k {
	case ProviderAlternate:
		return "openrouter"
	case ProviderPrimary:
		return "openai"
	default:
		return "gateway"
	}
}

// ProviderChoice is the resolved routing decision for a single request:
// which service, which model identifier, and - only when applicable - the
// credential and endpoint override to use.
type ProviderChoice struct {
	Kind    ProviderKind
	Model   string
	APIKey  string // empty means no explicit credential
	BaseURL string // empty means the service's default endpoint
}

// SelectProvider resolves the routing decision for one request. The chain is
// evaluated top-to-bottom and the first matching entry wins. It is a pure
// function of which configuration secrets are present - values are forwarded,
// never inspected - and must be re-evaluated for every request since the
// environment can change between requests.
func SelectProvider(cfg *config.Config) ProviderChoice {
	chain := []struct {
		matches func() bool
		choice  func() ProviderChoice
	}{
		{
			matches: func() bool { return cfg.OpenRouterKey() != "" },
			choice: func() ProviderChoice {
				return ProviderChoice{
					Kind:    ProviderAlternate,
					Model:   "openai/gpt-4o-mini",
					APIKey:  cfg.OpenRouterKey(),
					BaseURL: "https://openrouter.ai/api/v1",
				}
			},
		},
		{
			matches: func() bool { return cfg.OpenAIKey() != "" },
			choice: func() ProviderChoice {
				return ProviderChoice{
					Kind:   ProviderPrimary,
					Model:  "gpt-4o-mini",
					APIKey: cfg.OpenAIKey(),
				}
			},
		},
	}

	for _, entry := range chain {
		if entry.matches() {
			return entry.choice()
		}
	}

	return ProviderChoice{
		Kind:  ProviderDefault,
		Model: "openai/gpt-4o-mini",
	}
}

// ProviderCreator turns a routing decision into a usable client. Injected so
// tests can substitute a stub for the network-facing providers.
type ProviderCreator func(choice ProviderChoice) llm.Provider

// NewProviderCreator returns the production creator. The default gateway may
// pick up an ambient gateway credential from the configuration; the other two
// use exactly the credential carried by the choice.
func NewProviderCreator(cfg *config.Config) ProviderCreator {
	return func(choice ProviderChoice) llm.Provider {
		switch choice.Kind {
		case ProviderAlternate:
			return llm.NewOpenRouterProvider(choice.APIKey, choice.Model)
		case ProviderPrimary:
			return llm.NewOpenAIProvider(choice.APIKey, choice.Model)
		default:
			return llm.NewGatewayProvider(cfg.GatewayKey(), choice.Model)
		}
	}
}
