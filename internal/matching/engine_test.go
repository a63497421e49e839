package matching

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/interactions"
	"github.com/jonathan/talent-match/internal/types"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), opts...)
	require.NoError(t, err)
	return engine
}

func berlinCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:              uuid.MustParse("3e2f1a40-9c1d-4f5a-8b1e-2d6c7a9e0f11"),
		Name:            "Dana",
		Skills:          []string{"Python", "JavaScript", "React"},
		ExperienceLevel: types.ExperienceMid,
		YearsExperience: 4,
		Location:        "Berlin",
		SalaryExpectation: &types.SalaryRange{
			Min: 95000,
			Max: 120000,
		},
		Headline: "Full-stack engineer",
		Bio:      "Building web applications with Python and React",
	}
}

func berlinJob() *types.JobPosting {
	return &types.JobPosting{
		ID:              uuid.MustParse("7b8c9d0e-1f2a-4b3c-9d4e-5f6a7b8c9d0e"),
		Title:           "Senior Full-stack Engineer",
		Company:         "Acme",
		RequiredSkills:  []string{"Python", "JavaScript", "React", "Machine Learning"},
		ExperienceLevel: types.ExperienceSenior,
		RemoteMode:      types.RemoteOnSite,
		Location:        "Berlin",
		Salary: &types.SalaryRange{
			Min: 100000,
			Max: 140000,
		},
		Description: "We build web applications in Python and React for enterprise customers",
	}
}

func TestEngine_Compute_EndToEnd(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Compute(context.Background(), berlinCandidate(), berlinJob())
	require.NoError(t, err)

	assert.InDelta(t, 0.75, result.SkillScore, 1e-9)
	assert.InDelta(t, 0.65, result.ExperienceScore, 1e-9)
	assert.InDelta(t, 1.0, result.LocationScore, 1e-9)
	assert.InDelta(t, 0.8, result.SalaryScore, 1e-9)
	assert.Greater(t, result.ContentScore, 0.0)

	// Collaborative data is absent, so the remaining weights cover 0.95 of the
	// total mass and the overall score renormalizes over them.
	assert.Equal(t, []types.Signal{
		types.SignalSkill,
		types.SignalExperience,
		types.SignalLocation,
		types.SignalSalary,
		types.SignalContent,
	}, result.SignalsUsed)

	expected := (0.35*0.75 + 0.20*0.65 + 0.15*1.0 + 0.15*0.8 + 0.10*result.ContentScore) / 0.95
	assert.InDelta(t, expected, result.OverallScore, 1e-9)

	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestEngine_Compute_RenormalizesOverAvailableSignals(t *testing.T) {
	engine := newTestEngine(t)

	candidate := &types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"Go"},
		ExperienceLevel: types.ExperienceSenior,
	}
	job := &types.JobPosting{
		ID:              uuid.New(),
		Title:           "Platform Engineer",
		RequiredSkills:  []string{"Go"},
		ExperienceLevel: types.ExperienceSenior,
		RemoteMode:      types.RemoteFull,
	}

	result, err := engine.Compute(context.Background(), candidate, job)
	require.NoError(t, err)

	// Content has terms on both sides (title counts as job text) only when the
	// candidate has free text; this candidate has none, so content and
	// collaborative drop out and the four structured signals carry 0.85 weight.
	assert.Equal(t, []types.Signal{
		types.SignalSkill,
		types.SignalExperience,
		types.SignalLocation,
		types.SignalSalary,
	}, result.SignalsUsed)

	expected := (0.35*1.0 + 0.20*1.0 + 0.15*1.0 + 0.15*0.5) / 0.85
	assert.InDelta(t, expected, result.OverallScore, 1e-9)
}

func TestEngine_Compute_Deterministic(t *testing.T) {
	store := interactions.NewMemoryStore()
	job := berlinJob()
	for i := 0; i < 6; i++ {
		peer := types.CandidateProfile{
			ID:              uuid.New(),
			Skills:          []string{"Python", "React"},
			ExperienceLevel: types.ExperienceMid,
			Location:        "Berlin",
		}
		require.NoError(t, store.Record(peer, types.Interaction{
			CandidateID: peer.ID,
			JobID:       job.ID,
			Type:        types.InteractionApply,
			OccurredAt:  time.Now(),
		}))
	}
	engine := newTestEngine(t, WithInteractionStore(store))

	first, err := engine.Compute(context.Background(), berlinCandidate(), job)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := engine.Compute(context.Background(), berlinCandidate(), job)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEngine_Compute_NilInputs(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Compute(context.Background(), nil, berlinJob())
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "candidate", verr.Field)

	_, err = engine.Compute(context.Background(), berlinCandidate(), nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "job", verr.Field)
}

func TestEngine_Compute_RejectsInvalidExperienceLevel(t *testing.T) {
	engine := newTestEngine(t)
	candidate := berlinCandidate()
	candidate.ExperienceLevel = 0

	_, err := engine.Compute(context.Background(), candidate, berlinJob())

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "experience_level", verr.Field)
}

func TestEngine_Compute_RejectsNegativeSalaryMin(t *testing.T) {
	engine := newTestEngine(t)
	candidate := berlinCandidate()
	candidate.SalaryExpectation = &types.SalaryRange{Min: -1, Max: 50000}

	_, err := engine.Compute(context.Background(), candidate, berlinJob())

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "salary_expectation.min", verr.Field)
}

func TestEngine_Compute_ReasonsForStrongSignals(t *testing.T) {
	engine := newTestEngine(t)
	candidate := berlinCandidate()
	candidate.Skills = []string{"Python", "JavaScript", "React", "Machine Learning"}
	candidate.ExperienceLevel = types.ExperienceSenior

	result, err := engine.Compute(context.Background(), candidate, berlinJob())
	require.NoError(t, err)

	require.NotEmpty(t, result.Reasons)
	assert.Contains(t, result.Reasons[0], "skill match")
	assert.Empty(t, result.Suggestions)
}

func TestEngine_Compute_SuggestionsForWeakSignals(t *testing.T) {
	engine := newTestEngine(t)
	candidate := berlinCandidate()
	candidate.Skills = []string{"Cobol"}
	candidate.ExperienceLevel = types.ExperienceEntry
	candidate.Location = "Lisbon"
	candidate.SalaryExpectation = &types.SalaryRange{Min: 200000, Max: 250000}

	result, err := engine.Compute(context.Background(), candidate, berlinJob())
	require.NoError(t, err)

	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions[0], "machine learning")
	assert.Less(t, result.OverallScore, 0.5)
}

func TestEngine_Compute_CollaborativeFailureDegrades(t *testing.T) {
	engine := newTestEngine(t, WithInteractionStore(failingStore{}))

	result, err := engine.Compute(context.Background(), berlinCandidate(), berlinJob())
	require.NoError(t, err)

	assert.NotContains(t, result.SignalsUsed, types.SignalCollaborative)
	assert.Equal(t, 0.0, result.CollaborativeScore)
}

func TestEngine_Compute_ConfidenceGrowsWithData(t *testing.T) {
	engine := newTestEngine(t)

	sparse := &types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"Python"},
		ExperienceLevel: types.ExperienceMid,
	}
	job := berlinJob()

	sparseResult, err := engine.Compute(context.Background(), sparse, job)
	require.NoError(t, err)
	richResult, err := engine.Compute(context.Background(), berlinCandidate(), job)
	require.NoError(t, err)

	assert.Greater(t, richResult.Confidence, sparseResult.Confidence)
}

func TestEngine_Compute_ScoresStayInRange(t *testing.T) {
	engine := newTestEngine(t)
	job := berlinJob()

	candidates := []*types.CandidateProfile{
		berlinCandidate(),
		{ID: uuid.New(), ExperienceLevel: types.ExperienceEntry},
		{ID: uuid.New(), Skills: []string{"basket weaving"}, ExperienceLevel: types.ExperienceExecutive, Location: "Oslo"},
	}
	for _, candidate := range candidates {
		result, err := engine.Compute(context.Background(), candidate, job)
		require.NoError(t, err)

		for _, score := range []float64{
			result.OverallScore,
			result.SkillScore,
			result.ExperienceScore,
			result.LocationScore,
			result.SalaryScore,
			result.ContentScore,
			result.CollaborativeScore,
			result.Confidence,
		} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{}

	_, err := NewEngine(cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.WeakThreshold = 0.9

	_, err = NewEngine(cfg)
	assert.Error(t, err)
}

func TestConfigValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0, cfg.Weights.Total(), 1e-9)
}
