package rules

import (
	"errors"
	"testing"
	"time"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, cfg *model.Config) *Engine {
	t.Helper()
	engine, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	engine.now = func() time.Time { return testNow }
	return engine
}

func testClaim(amount float64) *model.Claim {
	return &model.Claim{
		ClaimID:     "CLM-2001",
		ClaimType:   model.ClaimTypeMedical,
		ServiceDate: testNow.AddDate(0, 0, -30),
		TotalAmount: amount,
	}
}

func outcomeByRule(outcomes []model.RuleOutcome, rule string) (model.RuleOutcome, bool) {
	for _, o := range outcomes {
		if o.Rule == rule {
			return o, true
		}
	}
	return model.RuleOutcome{}, false
}

func TestEvaluate_AllRulesRecorded(t *testing.T) {
	engine := newTestEngine(t, model.DefaultConfig())

	// Amount over the hard limit would short-circuit the decision, but
	// every rule must still be evaluated and recorded for audit.
	outcomes := engine.Evaluate(testClaim(150000), model.ValidationResult{DocumentationScore: 0.9})

	want := []string{
		model.RuleMaxClaimAmount,
		model.RuleAutoApprovalAmount,
		model.RuleMinDocumentation,
		model.RuleServiceDateWindow,
	}
	if len(outcomes) != len(want) {
		t.Fatalf("expected %d outcomes, got %d", len(want), len(outcomes))
	}
	for i, rule := range want {
		if outcomes[i].Rule != rule {
			t.Errorf("outcome %d: expected rule %s, got %s", i, rule, outcomes[i].Rule)
		}
		if outcomes[i].Detail == "" {
			t.Errorf("outcome %s: expected detail for audit", rule)
		}
	}
}

func TestEvaluate_MaxAmount(t *testing.T) {
	engine := newTestEngine(t, model.DefaultConfig())

	over, _ := outcomeByRule(engine.Evaluate(testClaim(150000), model.ValidationResult{}), model.RuleMaxClaimAmount)
	if over.Passed {
		t.Error("expected max_claim_amount to fail for 150000")
	}

	under, _ := outcomeByRule(engine.Evaluate(testClaim(500), model.ValidationResult{}), model.RuleMaxClaimAmount)
	if !under.Passed {
		t.Error("expected max_claim_amount to pass for 500")
	}
}

func TestEvaluate_AutoApprovalAmount(t *testing.T) {
	engine := newTestEngine(t, model.DefaultConfig())

	tests := []struct {
		amount float64
		want   bool
	}{
		{500, true},
		{1000, true}, // at the ceiling
		{1001, false},
		{0, false},
	}
	for _, tt := range tests {
		outcome, _ := outcomeByRule(engine.Evaluate(testClaim(tt.amount), model.ValidationResult{}), model.RuleAutoApprovalAmount)
		if outcome.Passed != tt.want {
			t.Errorf("amount %.2f: auto_approval_amount passed = %v, want %v", tt.amount, outcome.Passed, tt.want)
		}
	}
}

func TestEvaluate_Documentation(t *testing.T) {
	engine := newTestEngine(t, model.DefaultConfig())

	low, _ := outcomeByRule(engine.Evaluate(testClaim(500), model.ValidationResult{DocumentationScore: 0.4}), model.RuleMinDocumentation)
	if low.Passed {
		t.Error("expected min_documentation to fail at 0.4")
	}

	ok, _ := outcomeByRule(engine.Evaluate(testClaim(500), model.ValidationResult{DocumentationScore: 0.5}), model.RuleMinDocumentation)
	if !ok.Passed {
		t.Error("expected min_documentation to pass at 0.5")
	}
}

func TestEvaluate_ServiceDateWindow(t *testing.T) {
	engine := newTestEngine(t, model.DefaultConfig())

	claim := testClaim(500)
	claim.ServiceDate = testNow.AddDate(0, 0, -400)
	outcome, _ := outcomeByRule(engine.Evaluate(claim, model.ValidationResult{}), model.RuleServiceDateWindow)
	if outcome.Passed {
		t.Error("expected service_date_window to fail for a 400-day-old date")
	}
}

func TestEvaluate_CustomThresholds(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Rules.AutoApprovalAmountCeiling = 5000
	engine := newTestEngine(t, cfg)

	outcome, _ := outcomeByRule(engine.Evaluate(testClaim(3000), model.ValidationResult{}), model.RuleAutoApprovalAmount)
	if !outcome.Passed {
		t.Error("expected 3000 to pass with ceiling raised to 5000")
	}
}

func TestNewEngine_ConfigurationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Config)
	}{
		{"negative max amount", func(c *model.Config) { c.Rules.MaxClaimAmount = -1 }},
		{"confidence floor above 1", func(c *model.Config) { c.Rules.AutoApprovalConfidenceFloor = 1.5 }},
		{"negative documentation floor", func(c *model.Config) { c.Rules.MinDocumentationScore = -0.1 }},
		{"zero date window", func(c *model.Config) { c.Rules.ServiceDateWindowDays = 0 }},
		{"ceiling above max", func(c *model.Config) { c.Rules.AutoApprovalAmountCeiling = 200000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.DefaultConfig()
			tt.mutate(cfg)

			_, err := NewEngine(cfg)
			if err == nil {
				t.Fatal("expected configuration error")
			}
			var confErr *model.ConfigurationError
			if !errors.As(err, &confErr) {
				t.Errorf("expected ConfigurationError, got %T: %v", err, err)
			}
		})
	}
}
