// Package decide fuses validation outcome, rule outcomes, and extraction
// confidence into a single auditable decision.
package decide

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// FusionFunc combines the mean field confidence and the documentation
// score into the overall confidence. It must return a value in [0,1].
type FusionFunc func(meanConfidence, documentationScore float64) float64

// MinFusion is the default: the minimum of the two signals, so no single
// strong signal can mask a weak one.
func MinFusion(meanConfidence, documentationScore float64) float64 {
	return math.Min(meanConfidence, documentationScore)
}

// GeometricFusion is an alternative that rewards balanced signals
func GeometricFusion(meanConfidence, documentationScore float64) float64 {
	if meanConfidence < 0 || documentationScore < 0 {
		return 0
	}
	return math.Sqrt(meanConfidence * documentationScore)
}

// Engine turns a validated, rule-checked claim into a Decision. It is a
// deterministic pure function of its inputs: no hidden state, no I/O.
type Engine struct {
	cfg  model.RulesConfig
	fuse FusionFunc
	now  func() time.Time // injectable for tests
}

// NewEngine creates a decision engine with the default confidence fusion
func NewEngine(cfg *model.Config) (*Engine, error) {
	return NewEngineWithFusion(cfg, MinFusion)
}

// NewEngineWithFusion creates a decision engine with a custom fusion
// function
func NewEngineWithFusion(cfg *model.Config, fuse FusionFunc) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fuse == nil {
		fuse = MinFusion
	}
	return &Engine{cfg: cfg.Rules, fuse: fuse, now: time.Now}, nil
}

// Decide applies the decision policy in precedence order: validation
// failure, hard amount ceiling, auto-approval eligibility, manual review.
// The rationale names the rule that fired and the values compared so the
// decision can be reproduced from the record alone.
func (e *Engine) Decide(claim *model.Claim, validation model.ValidationResult, outcomes []model.RuleOutcome, confidence model.FieldConfidence) model.Decision {
	meanConfidence := confidence.MeanOver(claim.PopulatedFields())
	overall := clamp01(e.fuse(meanConfidence, validation.DocumentationScore))

	decision := model.Decision{
		ClaimID:           claim.ClaimID,
		OverallConfidence: overall,
		Timestamp:         e.now().UTC(),
	}

	switch {
	case !validation.Valid():
		decision.Verdict = model.VerdictRejected
		decision.Rationale = append(
			[]string{"validation failed"},
			errorRationale(validation)...,
		)

	case claim.TotalAmount > e.cfg.MaxClaimAmount:
		decision.Verdict = model.VerdictRejected
		decision.Rationale = []string{
			"amount exceeds maximum",
			fmt.Sprintf("amount %.2f > max_claim_amount %.2f", claim.TotalAmount, e.cfg.MaxClaimAmount),
		}

	case claim.TotalAmount <= e.cfg.AutoApprovalAmountCeiling &&
		overall >= e.cfg.AutoApprovalConfidenceFloor &&
		validation.DocumentationScore >= e.cfg.MinDocumentationScore:
		decision.Verdict = model.VerdictApproved
		decision.Rationale = []string{
			"auto-approved: all criteria met",
			fmt.Sprintf("amount %.2f <= auto_approval_amount_ceiling %.2f", claim.TotalAmount, e.cfg.AutoApprovalAmountCeiling),
			fmt.Sprintf("confidence %.2f >= auto_approval_confidence_floor %.2f", overall, e.cfg.AutoApprovalConfidenceFloor),
			fmt.Sprintf("documentation %.2f >= min_documentation_score %.2f", validation.DocumentationScore, e.cfg.MinDocumentationScore),
		}

	default:
		decision.Verdict = model.VerdictManualReview
		decision.Rationale = []string{
			"requires manual review",
			fmt.Sprintf("amount %.2f, confidence %.2f, documentation %.2f did not meet auto-approval criteria (ceiling %.2f, confidence floor %.2f, documentation floor %.2f)",
				claim.TotalAmount, overall, validation.DocumentationScore,
				e.cfg.AutoApprovalAmountCeiling, e.cfg.AutoApprovalConfidenceFloor, e.cfg.MinDocumentationScore),
		}
	}

	return decision
}

// Supersede creates a replacement Decision referencing the one it
// corrects. The original is never mutated.
func (e *Engine) Supersede(old model.Decision, claim *model.Claim, validation model.ValidationResult, outcomes []model.RuleOutcome, confidence model.FieldConfidence) model.Decision {
	next := e.Decide(claim, validation, outcomes, confidence)
	next.Supersedes = DecisionKey(old)
	return next
}

// DecisionKey identifies a Decision for supersession references
func DecisionKey(d model.Decision) string {
	return d.ClaimID + "@" + d.Timestamp.Format(time.RFC3339Nano)
}

func errorRationale(validation model.ValidationResult) []string {
	codes := validation.ErrorCodes()
	if len(codes) == 0 {
		return nil
	}
	return []string{"error codes: " + strings.Join(codes, ", ")}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
