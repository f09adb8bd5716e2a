// Package pipeline orchestrates the complete claim evaluation: field
// validation, business rules, and the final decision, with the audit
// trail kept alongside the verdict.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/PyBADR/SmartFormsGPT/internal/decide"
	"github.com/PyBADR/SmartFormsGPT/internal/model"
	"github.com/PyBADR/SmartFormsGPT/internal/rules"
	"github.com/PyBADR/SmartFormsGPT/internal/store"
	"github.com/PyBADR/SmartFormsGPT/internal/validate"
)

// Pipeline evaluates one claim at a time. It holds no per-claim state,
// so a single Pipeline is safe to share across concurrent workers.
type Pipeline struct {
	validator *validate.Validator
	rules     *rules.Engine
	decider   *decide.Engine
	store     store.Store
	log       zerolog.Logger
}

// NewPipeline builds a pipeline from the configuration. Construction
// fails fast on out-of-range thresholds; a misconfigured pipeline is
// never usable.
func NewPipeline(cfg *model.Config, log zerolog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ruleEngine, err := rules.NewEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("rules engine: %w", err)
	}

	decider, err := decide.NewEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("decision engine: %w", err)
	}

	var st store.Store
	switch cfg.Store.Backend {
	case "disk":
		st = store.NewDiskStore(cfg.Store.Dir, cfg.Store.TTL)
	default:
		st = store.NewMemoryStore(cfg.Store.TTL, cfg.Store.TTL)
	}

	return &Pipeline{
		validator: validate.NewValidator(cfg),
		rules:     ruleEngine,
		decider:   decider,
		store:     st,
		log:       log,
	}, nil
}

// Store exposes the decision store for callers that need to read back
// past evaluations
func (p *Pipeline) Store() store.Store {
	return p.store
}

// Process runs one claim through validation, rules, and decision, saves
// the evaluation, and returns it. A structurally unprocessable claim
// (nil record, unrecognized type) yields a SchemaError; an invalid claim
// is an expected outcome and flows through as a Rejected decision.
func (p *Pipeline) Process(ctx context.Context, claim *model.Claim, confidence model.FieldConfidence) (*model.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, &model.SchemaError{Reason: "claim record is nil"}
	}
	if !model.KnownClaimType(claim.ClaimType) {
		return nil, &model.SchemaError{
			ClaimID: claim.ClaimID,
			Reason:  fmt.Sprintf("unrecognized claim type %q", claim.ClaimType),
		}
	}

	validation := p.validator.Validate(claim, confidence)
	outcomes := p.rules.Evaluate(claim, validation)

	// Advisory duplicate flag; recorded for audit, never changes the verdict
	if detector, ok := p.store.(store.DuplicateDetector); ok {
		if detector.MarkSeen(claim) {
			outcomes = append(outcomes, model.RuleOutcome{
				Rule:   model.RuleDuplicateClaim,
				Passed: false,
				Detail: "a claim with the same patient, service date, and amount was already processed",
			})
		}
	}

	decision := p.decider.Decide(claim, validation, outcomes, confidence)

	eval := &model.Evaluation{
		Claim:      claim,
		Decision:   decision,
		Validation: validation,
		Rules:      outcomes,
	}

	if err := p.store.Save(eval); err != nil {
		return nil, fmt.Errorf("save decision: %w", err)
	}

	p.log.Info().
		Str("claim_id", claim.ClaimID).
		Str("verdict", string(decision.Verdict)).
		Float64("confidence", decision.OverallConfidence).
		Int("issues", len(validation.Issues)).
		Msg("claim evaluated")

	return eval, nil
}
