// Package rules evaluates claim-level business predicates against
// configured thresholds. Rules are data-driven: thresholds live in the
// configuration structure, never in code.
package rules

import (
	"fmt"
	"time"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// Engine evaluates every configured rule independently. Outcomes are
// recorded even when an earlier rule already determines the verdict;
// audit transparency takes precedence over early exit.
type Engine struct {
	cfg model.RulesConfig
	now func() time.Time // injectable for tests
}

// NewEngine creates a rules engine. The thresholds must already have
// passed Config.Validate; construction here never mutates them.
func NewEngine(cfg *model.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg.Rules, now: time.Now}, nil
}

// Evaluate runs all rules against the claim and its validation result,
// returning one named outcome per rule in a fixed order.
func (e *Engine) Evaluate(claim *model.Claim, validation model.ValidationResult) []model.RuleOutcome {
	outcomes := []model.RuleOutcome{
		e.checkMaxAmount(claim),
		e.checkAutoApprovalAmount(claim),
		e.checkDocumentation(validation),
		e.checkServiceDateWindow(claim),
	}
	return outcomes
}

func (e *Engine) checkMaxAmount(claim *model.Claim) model.RuleOutcome {
	passed := claim.TotalAmount <= e.cfg.MaxClaimAmount
	return model.RuleOutcome{
		Rule:   model.RuleMaxClaimAmount,
		Passed: passed,
		Detail: fmt.Sprintf("amount %.2f vs limit %.2f", claim.TotalAmount, e.cfg.MaxClaimAmount),
	}
}

func (e *Engine) checkAutoApprovalAmount(claim *model.Claim) model.RuleOutcome {
	passed := claim.TotalAmount > 0 && claim.TotalAmount <= e.cfg.AutoApprovalAmountCeiling
	return model.RuleOutcome{
		Rule:   model.RuleAutoApprovalAmount,
		Passed: passed,
		Detail: fmt.Sprintf("amount %.2f vs auto-approval ceiling %.2f", claim.TotalAmount, e.cfg.AutoApprovalAmountCeiling),
	}
}

func (e *Engine) checkDocumentation(validation model.ValidationResult) model.RuleOutcome {
	passed := validation.DocumentationScore >= e.cfg.MinDocumentationScore
	return model.RuleOutcome{
		Rule:   model.RuleMinDocumentation,
		Passed: passed,
		Detail: fmt.Sprintf("documentation score %.2f vs minimum %.2f", validation.DocumentationScore, e.cfg.MinDocumentationScore),
	}
}

func (e *Engine) checkServiceDateWindow(claim *model.Claim) model.RuleOutcome {
	now := e.now()
	oldest := now.AddDate(0, 0, -e.cfg.ServiceDateWindowDays)
	passed := !claim.ServiceDate.IsZero() &&
		!claim.ServiceDate.After(now) &&
		!claim.ServiceDate.Before(oldest)
	return model.RuleOutcome{
		Rule:   model.RuleServiceDateWindow,
		Passed: passed,
		Detail: fmt.Sprintf("service date %s within trailing %d days", claim.ServiceDate.Format("2006-01-02"), e.cfg.ServiceDateWindowDays),
	}
}
