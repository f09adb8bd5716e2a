package store

import (
	"testing"
	"time"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

func testEvaluation(claimID string) *model.Evaluation {
	return &model.Evaluation{
		Decision: model.Decision{
			ClaimID:   claimID,
			Verdict:   model.VerdictApproved,
			Timestamp: time.Now().UTC(),
		},
	}
}

func TestMemoryStore_SaveGet(t *testing.T) {
	s := NewMemoryStore(time.Hour, time.Hour)

	if err := s.Save(testEvaluation("CLM-1")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	eval, ok := s.Get("CLM-1")
	if !ok {
		t.Fatal("expected evaluation to be found")
	}
	if eval.Decision.ClaimID != "CLM-1" {
		t.Errorf("expected CLM-1, got %s", eval.Decision.ClaimID)
	}

	if _, ok := s.Get("CLM-missing"); ok {
		t.Error("expected miss for unknown claim ID")
	}
}

func TestMemoryStore_List(t *testing.T) {
	s := NewMemoryStore(time.Hour, time.Hour)
	_ = s.Save(testEvaluation("CLM-1"))
	_ = s.Save(testEvaluation("CLM-2"))

	if got := len(s.List()); got != 2 {
		t.Errorf("expected 2 evaluations, got %d", got)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := len(s.List()); got != 0 {
		t.Errorf("expected empty store after clear, got %d", got)
	}
}

func TestMemoryStore_MarkSeen(t *testing.T) {
	s := NewMemoryStore(time.Hour, time.Hour)

	claim := &model.Claim{
		PatientID:   "MBR-123456",
		ServiceDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: 500,
	}

	if s.MarkSeen(claim) {
		t.Error("first submission must not be flagged as duplicate")
	}
	if !s.MarkSeen(claim) {
		t.Error("identical resubmission must be flagged as duplicate")
	}

	// A different amount is a different claim
	other := *claim
	other.TotalAmount = 600
	if s.MarkSeen(&other) {
		t.Error("claim with different amount must not be flagged")
	}
}

func TestDuplicateKey_Stable(t *testing.T) {
	claim := &model.Claim{
		PatientID:   "MBR-123456",
		ServiceDate: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		TotalAmount: 500,
	}
	// Same patient, same day, same amount: time of day is irrelevant
	later := *claim
	later.ServiceDate = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	if DuplicateKey(claim) != DuplicateKey(&later) {
		t.Error("expected identical keys for the same service day")
	}
}
