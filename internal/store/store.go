// Package store persists decisions and their audit trail. Decisions are
// written once and never updated in place; a correction is a new record
// whose Supersedes field points at the old one.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// Store defines decision persistence
type Store interface {
	Save(eval *model.Evaluation) error
	Get(claimID string) (*model.Evaluation, bool)
	List() []*model.Evaluation
	Clear() error
}

// DuplicateDetector flags claims that look like resubmissions. Stores
// that cannot track this simply don't implement it.
type DuplicateDetector interface {
	MarkSeen(claim *model.Claim) bool
}

// DuplicateKey derives the identity used for duplicate-claim detection:
// same patient, same service date, same amount.
func DuplicateKey(claim *model.Claim) string {
	raw := fmt.Sprintf("%s_%s_%.2f", claim.PatientID, claim.ServiceDate.Format("2006-01-02"), claim.TotalAmount)
	hash := sha256.Sum256([]byte(raw))
	return "claims:v1:" + hex.EncodeToString(hash[:])
}
