package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/interactions"
	"github.com/jonathan/talent-match/internal/types"
)

func fixtureStore(t *testing.T, candidates []types.CandidateProfile, events []types.Interaction) *interactions.MemoryStore {
	t.Helper()
	store := interactions.NewMemoryStore()
	byID := make(map[uuid.UUID]types.CandidateProfile, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}
	for _, event := range events {
		require.NoError(t, store.Record(byID[event.CandidateID], event))
	}
	return store
}

func TestProfileSimilarity_IdenticalProfiles(t *testing.T) {
	profile := types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"Go", "Postgres"},
		ExperienceLevel: types.ExperienceSenior,
		Location:        "Berlin",
	}

	assert.InDelta(t, 1.0, profileSimilarity(&profile, &profile), 1e-9)
}

func TestProfileSimilarity_DisjointSkillsStillShareLevel(t *testing.T) {
	a := types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"Go"},
		ExperienceLevel: types.ExperienceMid,
		Location:        "Berlin",
	}
	b := types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"Rust"},
		ExperienceLevel: types.ExperienceMid,
		Location:        "Munich",
	}

	// No skill overlap, no location match; only level closeness contributes.
	assert.InDelta(t, neighborLevelWeight, profileSimilarity(&a, &b), 1e-9)
}

func TestScoreCollaborative_NilStoreIsUnavailable(t *testing.T) {
	cfg := DefaultConfig()
	candidate := types.CandidateProfile{ID: uuid.New()}
	job := types.JobPosting{ID: uuid.New()}

	score, available, err := scoreCollaborative(context.Background(), nil, &candidate, &job, &cfg)

	require.NoError(t, err)
	assert.False(t, available)
	assert.Equal(t, 0.0, score)
}

func TestScoreCollaborative_NoNeighborInteractionsIsUnavailable(t *testing.T) {
	cfg := DefaultConfig()
	candidate := types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"go"},
		ExperienceLevel: types.ExperienceMid,
	}
	other := types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"go"},
		ExperienceLevel: types.ExperienceMid,
	}
	job := types.JobPosting{ID: uuid.New()}
	otherJob := uuid.New()

	store := fixtureStore(t,
		[]types.CandidateProfile{other},
		[]types.Interaction{{CandidateID: other.ID, JobID: otherJob, Type: types.InteractionApply, OccurredAt: time.Now()}},
	)

	score, available, err := scoreCollaborative(context.Background(), store, &candidate, &job, &cfg)

	require.NoError(t, err)
	assert.False(t, available)
	assert.Equal(t, 0.0, score)
}

func TestScoreCollaborative_SingleNeighborApply(t *testing.T) {
	cfg := DefaultConfig()
	candidate := types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"go", "postgres"},
		ExperienceLevel: types.ExperienceSenior,
		Location:        "Berlin",
	}
	twin := candidate
	twin.ID = uuid.New()
	job := types.JobPosting{ID: uuid.New()}

	store := fixtureStore(t,
		[]types.CandidateProfile{twin},
		[]types.Interaction{{CandidateID: twin.ID, JobID: job.ID, Type: types.InteractionApply, OccurredAt: time.Now()}},
	)

	score, available, err := scoreCollaborative(context.Background(), store, &candidate, &job, &cfg)

	require.NoError(t, err)
	assert.True(t, available)
	// With one neighbor the similarity weighting cancels out and the score is
	// the apply's implicit value.
	assert.InDelta(t, types.InteractionApply.ImplicitValue(), score, 1e-9)
}

func TestScoreCollaborative_StrongestInteractionPerNeighborWins(t *testing.T) {
	cfg := DefaultConfig()
	candidate := types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"go"},
		ExperienceLevel: types.ExperienceMid,
		Location:        "Berlin",
	}
	twin := candidate
	twin.ID = uuid.New()
	job := types.JobPosting{ID: uuid.New()}

	store := fixtureStore(t,
		[]types.CandidateProfile{twin},
		[]types.Interaction{
			{CandidateID: twin.ID, JobID: job.ID, Type: types.InteractionView, OccurredAt: time.Now()},
			{CandidateID: twin.ID, JobID: job.ID, Type: types.InteractionSave, OccurredAt: time.Now()},
		},
	)

	score, _, err := scoreCollaborative(context.Background(), store, &candidate, &job, &cfg)

	require.NoError(t, err)
	assert.InDelta(t, types.InteractionSave.ImplicitValue(), score, 1e-9)
}

func TestScoreCollaborative_ExcludesCandidateOwnInteractions(t *testing.T) {
	cfg := DefaultConfig()
	candidate := types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"go"},
		ExperienceLevel: types.ExperienceMid,
	}
	job := types.JobPosting{ID: uuid.New()}

	store := fixtureStore(t,
		[]types.CandidateProfile{candidate},
		[]types.Interaction{{CandidateID: candidate.ID, JobID: job.ID, Type: types.InteractionApply, OccurredAt: time.Now()}},
	)

	_, available, err := scoreCollaborative(context.Background(), store, &candidate, &job, &cfg)

	require.NoError(t, err)
	assert.False(t, available)
}

func TestScoreCollaborative_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	candidate := types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"go", "kubernetes", "postgres"},
		ExperienceLevel: types.ExperienceSenior,
		Location:        "Berlin",
	}
	job := types.JobPosting{ID: uuid.New()}

	profiles := make([]types.CandidateProfile, 0, 8)
	events := make([]types.Interaction, 0, 8)
	kinds := []types.InteractionType{types.InteractionView, types.InteractionSave, types.InteractionApply}
	for i := 0; i < 8; i++ {
		p := types.CandidateProfile{
			ID:              uuid.New(),
			Skills:          []string{"go", "kubernetes"},
			ExperienceLevel: types.ExperienceSenior,
			Location:        "Berlin",
		}
		profiles = append(profiles, p)
		events = append(events, types.Interaction{
			CandidateID: p.ID,
			JobID:       job.ID,
			Type:        kinds[i%len(kinds)],
			OccurredAt:  time.Now(),
		})
	}
	store := fixtureStore(t, profiles, events)

	first, available, err := scoreCollaborative(context.Background(), store, &candidate, &job, &cfg)
	require.NoError(t, err)
	require.True(t, available)

	for i := 0; i < 10; i++ {
		again, _, err := scoreCollaborative(context.Background(), store, &candidate, &job, &cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

type failingStore struct{}

func (failingStore) ActiveCandidates(ctx context.Context) ([]types.CandidateProfile, error) {
	return nil, errors.New("store unreachable")
}

func (failingStore) InteractionsForJob(ctx context.Context, jobID uuid.UUID) ([]types.Interaction, error) {
	return nil, errors.New("store unreachable")
}

func TestScoreCollaborative_StoreErrorPropagates(t *testing.T) {
	cfg := DefaultConfig()
	candidate := types.CandidateProfile{ID: uuid.New()}
	job := types.JobPosting{ID: uuid.New()}

	_, available, err := scoreCollaborative(context.Background(), failingStore{}, &candidate, &job, &cfg)

	assert.Error(t, err)
	assert.False(t, available)
}
