package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadClaimFile_Wrapped(t *testing.T) {
	path := writeTemp(t, `{
		"claim": {"claim_id": "CLM-1", "claim_type": "medical", "total_amount": 500},
		"confidence": {"claim_id": 0.9}
	}`)

	claim, confidence, err := readClaimFile(path)
	if err != nil {
		t.Fatalf("readClaimFile: %v", err)
	}
	if claim.ClaimID != "CLM-1" {
		t.Errorf("expected CLM-1, got %s", claim.ClaimID)
	}
	if got := confidence.Get("claim_id"); got != 0.9 {
		t.Errorf("expected confidence 0.9, got %.2f", got)
	}
}

func TestReadClaimFile_BareClaim(t *testing.T) {
	path := writeTemp(t, `{"claim_id": "CLM-2", "claim_type": "dental", "total_amount": 120}`)

	claim, confidence, err := readClaimFile(path)
	if err != nil {
		t.Fatalf("readClaimFile: %v", err)
	}
	if claim.ClaimID != "CLM-2" {
		t.Errorf("expected CLM-2, got %s", claim.ClaimID)
	}
	if confidence != nil {
		t.Errorf("expected nil confidence for bare claim, got %v", confidence)
	}
}

func TestReadClaimFile_Malformed(t *testing.T) {
	path := writeTemp(t, `not json`)

	if _, _, err := readClaimFile(path); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestReadBatchFile(t *testing.T) {
	path := writeTemp(t, `[
		{"claim": {"claim_id": "CLM-1", "claim_type": "medical"}, "confidence": {}},
		{"claim": {"claim_id": "CLM-2", "claim_type": "unknown-type"}, "confidence": {}},
		{"claim": {"claim_id": "CLM-3", "claim_type": "dental"}, "confidence": {}}
	]`)

	items, err := readBatchFile(path)
	if err != nil {
		t.Fatalf("readBatchFile: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	// Order must match the file; the unknown type is kept for the batch
	// runner to surface as a per-item failure
	if items[1].Claim.ClaimType != model.ClaimType("unknown-type") {
		t.Errorf("expected unknown-type preserved, got %s", items[1].Claim.ClaimType)
	}
}
