package extract

import (
	"strings"
	"testing"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

func TestBuildPrompt_TruncatesLongDocuments(t *testing.T) {
	doc := strings.Repeat("x", 20000)
	prompt := BuildPrompt(doc)

	if len(prompt) > 7000 {
		t.Errorf("expected truncated prompt, got %d chars", len(prompt))
	}
	if !strings.Contains(prompt, "Recognized claim types") {
		t.Error("expected prompt to name the recognized claim types")
	}
}

func TestParseExtraction(t *testing.T) {
	content := `{
		"claim": {
			"claim_id": "CLM-7001",
			"claim_type": "dental",
			"patient_name": "Jane Doe",
			"total_amount": 250.5
		},
		"confidence": {
			"claim_id": 0.99,
			"patient_name": 0.87,
			"total_amount": 0.91
		}
	}`

	claim, confidence, err := ParseExtraction(content)
	if err != nil {
		t.Fatalf("ParseExtraction: %v", err)
	}

	if claim.ClaimID != "CLM-7001" {
		t.Errorf("expected CLM-7001, got %s", claim.ClaimID)
	}
	if claim.ClaimType != model.ClaimTypeDental {
		t.Errorf("expected dental, got %s", claim.ClaimType)
	}
	if claim.TotalAmount != 250.5 {
		t.Errorf("expected 250.5, got %.2f", claim.TotalAmount)
	}
	if got := confidence.Get("patient_name"); got != 0.87 {
		t.Errorf("expected confidence 0.87, got %.2f", got)
	}
}

func TestParseExtraction_ToleratesCodeFences(t *testing.T) {
	content := "```json\n{\"claim\": {\"claim_id\": \"CLM-7002\", \"claim_type\": \"medical\"}, \"confidence\": {}}\n```"

	claim, _, err := ParseExtraction(content)
	if err != nil {
		t.Fatalf("ParseExtraction: %v", err)
	}
	if claim.ClaimID != "CLM-7002" {
		t.Errorf("expected CLM-7002, got %s", claim.ClaimID)
	}
}

func TestParseExtraction_ClampsConfidence(t *testing.T) {
	content := `{"claim": {"claim_id": "CLM-7003", "claim_type": "vision"},
		"confidence": {"claim_id": 1.7, "patient_name": -0.3}}`

	_, confidence, err := ParseExtraction(content)
	if err != nil {
		t.Fatalf("ParseExtraction: %v", err)
	}
	if got := confidence.Get("claim_id"); got != 1 {
		t.Errorf("expected clamp to 1, got %.2f", got)
	}
	if got := confidence.Get("patient_name"); got != 0 {
		t.Errorf("expected clamp to 0, got %.2f", got)
	}
}

func TestParseExtraction_RejectsProse(t *testing.T) {
	if _, _, err := ParseExtraction("Sorry, I could not find a claim in this document."); err == nil {
		t.Error("expected parse error for non-JSON output")
	}
}
