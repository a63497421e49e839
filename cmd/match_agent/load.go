package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-match/internal/interactions"
	"github.com/jonathan/talent-match/internal/schemas"
	"github.com/jonathan/talent-match/internal/types"
)

// loadCandidate reads a candidate-profile JSON file, checks it against the
// embedded schema, and decodes it.
func loadCandidate(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}
	if err := schemas.ValidateCandidate(data); err != nil {
		return nil, fmt.Errorf("candidate file %s: %w", path, err)
	}
	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse candidate file %s: %w", path, err)
	}
	return &candidate, nil
}

// loadJob reads a job-posting JSON file, checks it against the embedded
// schema, and decodes it.
func loadJob(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	if err := schemas.ValidateJobPosting(data); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return &job, nil
}

// loadCandidates reads a JSON array of candidate profiles, schema-checking
// each element.
func loadCandidates(path string) ([]types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse candidates file %s: expected a JSON array: %w", path, err)
	}

	candidates := make([]types.CandidateProfile, 0, len(raw))
	for i, doc := range raw {
		if err := schemas.ValidateCandidate(doc); err != nil {
			return nil, fmt.Errorf("candidates file %s, element %d: %w", path, i, err)
		}
		var candidate types.CandidateProfile
		if err := json.Unmarshal(doc, &candidate); err != nil {
			return nil, fmt.Errorf("failed to parse candidates file %s, element %d: %w", path, i, err)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// interactionFixture is the file format for a standalone interaction log:
// the interacting candidates' profiles plus their recorded events.
type interactionFixture struct {
	Candidates   []types.CandidateProfile `json:"candidates"`
	Interactions []types.Interaction      `json:"interactions"`
}

// loadInteractions reads an interaction-log fixture into an in-memory store
// for the collaborative signal.
func loadInteractions(path string) (*interactions.MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interactions file %s: %w", path, err)
	}
	var fixture interactionFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse interactions file %s: %w", path, err)
	}

	profiles := make(map[string]types.CandidateProfile, len(fixture.Candidates))
	for _, candidate := range fixture.Candidates {
		profiles[candidate.ID.String()] = candidate
	}

	store := interactions.NewMemoryStore()
	for _, interaction := range fixture.Interactions {
		profile, ok := profiles[interaction.CandidateID.String()]
		if !ok {
			return nil, fmt.Errorf("interactions file %s: no profile for candidate %s", path, interaction.CandidateID)
		}
		if err := store.Record(profile, interaction); err != nil {
			return nil, fmt.Errorf("interactions file %s: %w", path, err)
		}
	}
	return store, nil
}
