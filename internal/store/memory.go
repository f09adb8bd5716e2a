package store

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// MemoryStore keeps evaluations in memory with a TTL
type MemoryStore struct {
	cache *gocache.Cache
	seen  *gocache.Cache
}

// NewMemoryStore creates a memory store. Entries expire after defaultTTL;
// the cleanup interval controls how often expired entries are purged.
func NewMemoryStore(defaultTTL, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(defaultTTL, cleanupInterval),
		seen:  gocache.New(defaultTTL, cleanupInterval),
	}
}

// Save stores an evaluation keyed by claim ID
func (s *MemoryStore) Save(eval *model.Evaluation) error {
	s.cache.Set(eval.Decision.ClaimID, eval, gocache.DefaultExpiration)
	return nil
}

// Get retrieves an evaluation by claim ID
func (s *MemoryStore) Get(claimID string) (*model.Evaluation, bool) {
	if val, found := s.cache.Get(claimID); found {
		return val.(*model.Evaluation), true
	}
	return nil, false
}

// List returns all stored evaluations
func (s *MemoryStore) List() []*model.Evaluation {
	items := s.cache.Items()
	evals := make([]*model.Evaluation, 0, len(items))
	for _, item := range items {
		evals = append(evals, item.Object.(*model.Evaluation))
	}
	return evals
}

// Clear removes all stored evaluations
func (s *MemoryStore) Clear() error {
	s.cache.Flush()
	s.seen.Flush()
	return nil
}

// MarkSeen records the claim's duplicate key and reports whether a claim
// with the same patient, service date, and amount was already processed.
// The result is advisory; it never changes a verdict.
func (s *MemoryStore) MarkSeen(claim *model.Claim) bool {
	key := DuplicateKey(claim)
	if _, found := s.seen.Get(key); found {
		return true
	}
	s.seen.Set(key, struct{}{}, gocache.DefaultExpiration)
	return false
}
