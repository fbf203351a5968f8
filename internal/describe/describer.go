package describe

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/lkoehl/propscribe/internal/config"
	"github.com/lkoehl/propscribe/internal/constants"
	"github.com/lkoehl/propscribe/internal/llm"
)

// Describer produces listing descriptions: it assembles the prompt, resolves
// the provider chain and dispatches a single completion call. It holds no
// per-request state and is safe for concurrent use.
type Describer struct {
	cfg            *config.Config
	createProvider ProviderCreator
}

func NewDescriber(cfg *config.Config, createProvider ProviderCreator) *Describer {
	return &Describer{
		cfg:            cfg,
		createProvider: createProvider,
	}
}

// Generate returns the generated description text. The upstream call is
// bounded by the generation timeout and never retried; any fault is returned
// to the caller as-is for the handler to translate.
func (d *Describer) Generate(ctx context.Context, attrs Attributes) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.GenerationTimeout)
	defer cancel()

	choice := SelectProvider(d.cfg)
	provider := d.createProvider(choice)

	log.Debug().
		Stringer("provider", choice.Kind).
		Str("model", choice.Model).
		Msg("Dispatching description request.")

	resp, err := provider.Complete(ctx, llm.NewRequest(choice.Model, BuildPrompt(attrs)))
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}
