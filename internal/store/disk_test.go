package store

import (
	"testing"
	"time"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

func TestDiskStore_SaveGet(t *testing.T) {
	s := NewDiskStore(t.TempDir(), time.Hour)

	if err := s.Save(testEvaluation("CLM-9")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	eval, ok := s.Get("CLM-9")
	if !ok {
		t.Fatal("expected evaluation to be found")
	}
	if eval.Decision.ClaimID != "CLM-9" {
		t.Errorf("expected CLM-9, got %s", eval.Decision.ClaimID)
	}
}

func TestDiskStore_Expiry(t *testing.T) {
	s := NewDiskStore(t.TempDir(), -time.Minute) // already expired on write

	_ = s.Save(testEvaluation("CLM-9"))

	if _, ok := s.Get("CLM-9"); ok {
		t.Error("expected expired entry to be a miss")
	}
}

func TestDiskStore_ListClear(t *testing.T) {
	s := NewDiskStore(t.TempDir(), time.Hour)
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

func TestDiskStore_MarkSeen(t *testing.T) {
	s := NewDiskStore(t.TempDir(), time.Hour)

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

	other := *claim
	other.TotalAmount = 600
	if s.MarkSeen(&other) {
		t.Error("claim with different amount must not be flagged")
	}

	// Seen markers must not surface as stored evaluations
	if got := len(s.List()); got != 0 {
		t.Errorf("expected no evaluations, got %d", got)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.MarkSeen(claim) {
		t.Error("Clear must reset the seen markers")
	}
}

func TestDiskStore_MarkSeenExpiry(t *testing.T) {
	s := NewDiskStore(t.TempDir(), -time.Minute) // markers expire on write

	claim := &model.Claim{
		PatientID:   "MBR-123456",
		ServiceDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: 500,
	}

	_ = s.MarkSeen(claim)
	if s.MarkSeen(claim) {
		t.Error("an expired marker must not flag a duplicate")
	}
}

func TestDiskStore_SanitizesClaimIDs(t *testing.T) {
	s := NewDiskStore(t.TempDir(), time.Hour)

	if err := s.Save(testEvaluation("CLM/2025:06*01")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := s.Get("CLM/2025:06*01"); !ok {
		t.Error("expected round-trip through sanitized filename")
	}
}
