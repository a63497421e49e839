package matching

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/talent-match/internal/types"
)

// InteractionStore is the read-only view of the interaction-logging
// collaborator that the collaborative signal consumes.
type InteractionStore interface {
	// ActiveCandidates returns the profiles of candidates with at least one
	// recorded interaction.
	ActiveCandidates(ctx context.Context) ([]types.CandidateProfile, error)

	// InteractionsForJob returns all recorded interactions on the given job.
	InteractionsForJob(ctx context.Context, jobID uuid.UUID) ([]types.Interaction, error)
}

// Similarity weights for finding neighbor candidates. Relative importance of
// profile attributes when judging "candidates like this one".
const (
	neighborSkillWeight    = 0.6
	neighborLevelWeight    = 0.25
	neighborLocationWeight = 0.15
)

// profileSimilarity measures how alike two candidate profiles are, in [0,1]:
// skill-set Jaccard overlap, seniority proximity, and location equality.
func profileSimilarity(a, b *types.CandidateProfile) float64 {
	skillsA := make(map[string]bool)
	for _, skill := range a.Skills {
		if normalized := normalizeSkill(skill); normalized != "" {
			skillsA[normalized] = true
		}
	}
	skillsB := make(map[string]bool)
	for _, skill := range b.Skills {
		if normalized := normalizeSkill(skill); normalized != "" {
			skillsB[normalized] = true
		}
	}
	intersection := 0
	for skill := range skillsA {
		if skillsB[skill] {
			intersection++
		}
	}
	union := len(skillsA) + len(skillsB) - intersection
	jaccard := 0.0
	if union > 0 {
		jaccard = float64(intersection) / float64(union)
	}

	levelSpread := float64(types.ExperienceExecutive - types.ExperienceEntry)
	levelGap := math.Abs(float64(a.ExperienceLevel) - float64(b.ExperienceLevel))
	levelCloseness := 1.0 - levelGap/levelSpread

	locationMatch := 0.0
	if normalizeSkill(a.Location) != "" && normalizeSkill(a.Location) == normalizeSkill(b.Location) {
		locationMatch = 1.0
	}

	return neighborSkillWeight*jaccard + neighborLevelWeight*levelCloseness + neighborLocationWeight*locationMatch
}

// neighbor pairs a candidate with its similarity to the candidate being scored.
type neighbor struct {
	id         uuid.UUID
	similarity float64
}

// scoreCollaborative aggregates the historical interaction outcomes of the K
// candidates most similar to this one on the given job, weighted by profile
// similarity. The available flag is false when no store is configured or no
// neighbor has interacted with the job; an absent signal is excluded from the
// weighted sum rather than contributing a zero.
func scoreCollaborative(ctx context.Context, store InteractionStore, candidate *types.CandidateProfile, job *types.JobPosting, cfg *Config) (score float64, available bool, err error) {
	if store == nil {
		return 0.0, false, nil
	}

	others, err := store.ActiveCandidates(ctx)
	if err != nil {
		return 0.0, false, err
	}

	neighbors := make([]neighbor, 0, len(others))
	for i := range others {
		if others[i].ID == candidate.ID {
			continue
		}
		similarity := profileSimilarity(candidate, &others[i])
		if similarity > 0 {
			neighbors = append(neighbors, neighbor{id: others[i].ID, similarity: similarity})
		}
	}
	if len(neighbors) == 0 {
		return 0.0, false, nil
	}

	// Deterministic ordering: similarity descending, candidate ID as tie-break.
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].similarity != neighbors[j].similarity {
			return neighbors[i].similarity > neighbors[j].similarity
		}
		return neighbors[i].id.String() < neighbors[j].id.String()
	})
	if len(neighbors) > cfg.Neighbors {
		neighbors = neighbors[:cfg.Neighbors]
	}

	interactions, err := store.InteractionsForJob(ctx, job.ID)
	if err != nil {
		return 0.0, false, err
	}

	// Strongest interaction per candidate wins; a candidate who viewed and
	// then applied counts as an apply.
	outcomes := make(map[uuid.UUID]float64, len(interactions))
	for _, interaction := range interactions {
		if value := interaction.Type.ImplicitValue(); value > outcomes[interaction.CandidateID] {
			outcomes[interaction.CandidateID] = value
		}
	}

	var weightedSum, similaritySum float64
	for _, n := range neighbors {
		value, ok := outcomes[n.id]
		if !ok {
			continue
		}
		weightedSum += n.similarity * value
		similaritySum += n.similarity
	}
	if similaritySum == 0 {
		return 0.0, false, nil
	}

	return weightedSum / similaritySum, true, nil
}
