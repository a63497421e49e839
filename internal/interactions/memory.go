// Package interactions provides interaction-log storage backends for the
// collaborative signal.
package interactions

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/talent-match/internal/types"
)

// MemoryStore is an in-memory interaction log. It serves test fixtures and
// CLI runs that have no database configured. Safe for concurrent use.
type MemoryStore struct {
	mu           sync.RWMutex
	candidates   map[uuid.UUID]types.CandidateProfile
	interactions []types.Interaction
}

// NewMemoryStore creates an empty in-memory interaction log.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		candidates: make(map[uuid.UUID]types.CandidateProfile),
	}
}

// Record stores one interaction along with the acting candidate's profile.
func (s *MemoryStore) Record(candidate types.CandidateProfile, interaction types.Interaction) error {
	if !interaction.Type.Valid() {
		return &types.ValidationError{Field: "interaction_type", Message: "invalid value"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[candidate.ID] = candidate
	s.interactions = append(s.interactions, interaction)
	return nil
}

// ActiveCandidates returns the profiles of all candidates with recorded
// interactions, ordered by ID for deterministic iteration.
func (s *MemoryStore) ActiveCandidates(ctx context.Context) ([]types.CandidateProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(s.candidates))
	for id := range s.candidates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	profiles := make([]types.CandidateProfile, 0, len(ids))
	for _, id := range ids {
		profiles = append(profiles, s.candidates[id])
	}
	return profiles, nil
}

// InteractionsForJob returns all recorded interactions on the given job.
func (s *MemoryStore) InteractionsForJob(ctx context.Context, jobID uuid.UUID) ([]types.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]types.Interaction, 0)
	for _, interaction := range s.interactions {
		if interaction.JobID == jobID {
			matches = append(matches, interaction)
		}
	}
	return matches, nil
}
