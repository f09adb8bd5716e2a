package model

import "time"

// Verdict is the final disposition of a claim
type Verdict string

const (
	VerdictApproved     Verdict = "approved"
	VerdictRejected     Verdict = "rejected"
	VerdictManualReview Verdict = "manual_review"
)

// RuleOutcome records one business rule evaluation. Every configured rule
// is recorded even when an earlier check already determines the verdict,
// so the audit trail stays complete.
type RuleOutcome struct {
	Rule   string `json:"rule"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Rule names emitted by the rules engine
const (
	RuleMaxClaimAmount     = "max_claim_amount"
	RuleAutoApprovalAmount = "auto_approval_amount"
	RuleMinDocumentation   = "min_documentation"
	RuleServiceDateWindow  = "service_date_window"
	RuleDuplicateClaim     = "duplicate_claim"
)

// Decision is the immutable output of the decision engine. Corrections
// never mutate an existing Decision; they create a new one whose
// Supersedes field references the old decision's claim ID + timestamp key.
type Decision struct {
	ClaimID           string    `json:"claim_id"`
	Verdict           Verdict   `json:"verdict"`
	OverallConfidence float64   `json:"overall_confidence"`
	Rationale         []string  `json:"rationale"`
	Timestamp         time.Time `json:"timestamp"`
	Supersedes        string    `json:"supersedes,omitempty"`
}

// Evaluation bundles a Decision with the validation and rule audit trail
// that produced it. Callers may discard everything but the Decision.
type Evaluation struct {
	Claim      *Claim           `json:"-"`
	Decision   Decision         `json:"decision"`
	Validation ValidationResult `json:"validation"`
	Rules      []RuleOutcome    `json:"rules"`
}
