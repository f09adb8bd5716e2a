package extract

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// Extractor turns document text into a claim record plus per-field
// confidence, rate-limited per provider
type Extractor struct {
	provider Provider
	limiter  *Limiter
	cfg      model.ExtractorConfig
	log      zerolog.Logger
}

// NewExtractor creates an extractor for the configured provider
func NewExtractor(cfg model.ExtractorConfig, log zerolog.Logger) (*Extractor, error) {
	var provider Provider
	var err error

	switch cfg.Provider {
	case "openai", "":
		provider, err = NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown extraction provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Extractor{
		provider: provider,
		limiter:  NewLimiter(rps, cfg.Burst),
		cfg:      cfg,
		log:      log,
	}, nil
}

// ExtractClaim sends document text to the provider and decodes the
// structured claim it returns
func (e *Extractor) ExtractClaim(ctx context.Context, documentText string) (*model.Claim, model.FieldConfidence, error) {
	if err := e.limiter.Wait(ctx, e.provider.Name()); err != nil {
		return nil, nil, fmt.Errorf("rate limit: %w", err)
	}

	resp, err := e.provider.Complete(ctx, CompletionRequest{
		System:    systemPrompt,
		Prompt:    BuildPrompt(documentText),
		Model:     e.cfg.Model,
		MaxTokens: e.cfg.MaxTokens,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("extraction call: %w", err)
	}

	claim, confidence, err := ParseExtraction(resp.Content)
	if err != nil {
		return nil, nil, err
	}

	e.log.Debug().
		Str("provider", e.provider.Name()).
		Str("model", resp.Model).
		Int("tokens", resp.TokensUsed).
		Str("claim_id", claim.ClaimID).
		Msg("claim extracted")

	return claim, confidence, nil
}
