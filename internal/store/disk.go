package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// DiskStore persists evaluations as JSON files, one per claim
type DiskStore struct {
	dir string
	ttl time.Duration
}

// NewDiskStore creates a disk store rooted at dir
func NewDiskStore(dir string, ttl time.Duration) *DiskStore {
	return &DiskStore{dir: dir, ttl: ttl}
}

type diskEntry struct {
	Evaluation *model.Evaluation `json:"evaluation"`
	ExpiresAt  time.Time         `json:"expires_at"`
}

// Save writes the evaluation to disk
func (s *DiskStore) Save(eval *model.Evaluation) error {
	entry := diskEntry{
		Evaluation: eval,
		ExpiresAt:  time.Now().Add(s.ttl),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal evaluation: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	if err := os.WriteFile(s.path(eval.Decision.ClaimID), data, 0644); err != nil {
		return fmt.Errorf("write evaluation: %w", err)
	}
	return nil
}

// Get reads an evaluation back from disk
func (s *DiskStore) Get(claimID string) (*model.Evaluation, bool) {
	data, err := os.ReadFile(s.path(claimID))
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(s.path(claimID))
		return nil, false
	}

	return entry.Evaluation, true
}

// List returns all unexpired evaluations on disk
func (s *DiskStore) List() []*model.Evaluation {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var evals []*model.Evaluation
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		claimID := strings.TrimSuffix(entry.Name(), ".json")
		if eval, ok := s.Get(claimID); ok {
			evals = append(evals, eval)
		}
	}
	return evals
}

// Clear removes every stored evaluation and the seen-key markers
func (s *DiskStore) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read store dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
	}

	if err := os.RemoveAll(s.seenDir()); err != nil {
		return fmt.Errorf("remove seen markers: %w", err)
	}
	return nil
}

// MarkSeen records the claim's duplicate key as a marker file and reports
// whether an unexpired marker already existed. The result is advisory;
// it never changes a verdict.
func (s *DiskStore) MarkSeen(claim *model.Claim) bool {
	path := filepath.Join(s.seenDir(), sanitize(DuplicateKey(claim)))

	if data, err := os.ReadFile(path); err == nil {
		var expires time.Time
		if err := expires.UnmarshalText(data); err == nil && time.Now().Before(expires) {
			return true
		}
	}

	if err := os.MkdirAll(s.seenDir(), 0755); err != nil {
		return false
	}
	expires, err := time.Now().Add(s.ttl).MarshalText()
	if err != nil {
		return false
	}
	_ = os.WriteFile(path, expires, 0644)
	return false
}

func (s *DiskStore) seenDir() string {
	return filepath.Join(s.dir, "seen")
}

func (s *DiskStore) path(claimID string) string {
	return filepath.Join(s.dir, sanitize(claimID)+".json")
}

func sanitize(s string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_",
		"?", "_", "\"", "_", "<", "_", ">", "_",
		"|", "_", " ", "-",
	)
	out := replacer.Replace(s)
	if len(out) > 100 {
		out = out[:100]
	}
	return out
}
