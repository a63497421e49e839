package matching

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/types"
)

// signalScore is one scoring dimension's outcome, carried in priority order
// through aggregation and explanation.
type signalScore struct {
	signal    types.Signal
	score     float64
	weight    float64
	available bool
}

// Engine is the hybrid scoring engine. It is a pure computation over its
// inputs with no shared mutable state; one Engine may be used concurrently
// from any number of goroutines. The only I/O on the scoring path is the
// optional, timeout-bounded interaction-store lookup.
type Engine struct {
	cfg          Config
	interactions InteractionStore
	logger       *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithInteractionStore wires the interaction-logging collaborator that backs
// the collaborative signal. Without it the signal is simply unavailable.
func WithInteractionStore(store InteractionStore) Option {
	return func(e *Engine) { e.interactions = store }
}

// WithLogger sets the engine's logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine validates the configuration and constructs an engine.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Compute scores one candidate against one job posting and packages the
// weighted overall score, sub-scores, confidence, and explanation text.
//
// The computation is deterministic: identical inputs and unchanged interaction
// data yield bit-for-bit identical scores and identically ordered reasons.
// Malformed inputs fail fast with a validation error naming the offending
// field. Collaborative-signal failures degrade to "signal unavailable" with
// the weights renormalized over the remaining signals.
func (e *Engine) Compute(ctx context.Context, candidate *types.CandidateProfile, job *types.JobPosting) (*types.MatchScoreResult, error) {
	if candidate == nil {
		return nil, &types.ValidationError{Field: "candidate", Message: "must not be nil"}
	}
	if job == nil {
		return nil, &types.ValidationError{Field: "job", Message: "must not be nil"}
	}
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("scoring aborted: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("scoring aborted: %w", err)
	}

	skillScore, matched, missing := scoreSkills(candidate.Skills, job.RequiredSkills)
	experienceScore := scoreExperience(candidate.ExperienceLevel, job.ExperienceLevel, &e.cfg)
	locationScore := scoreLocation(candidate.Location, job, &e.cfg)
	salaryScore, salaryData := scoreSalary(candidate.SalaryExpectation, job.Salary, &e.cfg)
	contentScore, contentAvailable := scoreContent(candidate.FreeText(), job.FreeText())

	collaborativeScore, collaborativeAvailable := e.collaborative(ctx, candidate, job)

	signals := []signalScore{
		{signal: types.SignalSkill, score: skillScore, weight: e.cfg.Weights.Skill, available: true},
		{signal: types.SignalExperience, score: experienceScore, weight: e.cfg.Weights.Experience, available: true},
		{signal: types.SignalLocation, score: locationScore, weight: e.cfg.Weights.Location, available: true},
		{signal: types.SignalSalary, score: salaryScore, weight: e.cfg.Weights.Salary, available: true},
		{signal: types.SignalContent, score: contentScore, weight: e.cfg.Weights.Content, available: contentAvailable},
		{signal: types.SignalCollaborative, score: collaborativeScore, weight: e.cfg.Weights.Collaborative, available: collaborativeAvailable},
	}

	// Weighted sum over available signals, renormalized so unavailable
	// best-effort signals never drag the overall score down.
	var weightedSum, availableWeight float64
	used := make([]types.Signal, 0, len(signals))
	for _, s := range signals {
		if !s.available || s.weight == 0 {
			continue
		}
		weightedSum += s.weight * clamp01(s.score)
		availableWeight += s.weight
		used = append(used, s.signal)
	}
	overall := 0.0
	if availableWeight > 0 {
		overall = clamp01(weightedSum / availableWeight)
	}

	confidence := e.confidence(candidate, job, salaryData, availableWeight)

	return &types.MatchScoreResult{
		CandidateID:        candidate.ID,
		JobID:              job.ID,
		OverallScore:       overall,
		SkillScore:         clamp01(skillScore),
		ExperienceScore:    clamp01(experienceScore),
		LocationScore:      clamp01(locationScore),
		SalaryScore:        clamp01(salaryScore),
		ContentScore:       clamp01(contentScore),
		CollaborativeScore: clamp01(collaborativeScore),
		SignalsUsed:        used,
		Confidence:         confidence,
		Reasons:            buildReasons(signals, matched, candidate, job, &e.cfg),
		Suggestions:        buildSuggestions(signals, missing, candidate, job, &e.cfg),
	}, nil
}

// collaborative runs the best-effort collaborative signal under the configured
// timeout. Lookup failures and timeouts degrade to "unavailable" and are
// logged at warning level, never escalated.
func (e *Engine) collaborative(ctx context.Context, candidate *types.CandidateProfile, job *types.JobPosting) (float64, bool) {
	if e.interactions == nil {
		return 0.0, false
	}
	lookupCtx, cancel := context.WithTimeout(ctx, e.cfg.CollaborativeTimeout)
	defer cancel()

	score, available, err := scoreCollaborative(lookupCtx, e.interactions, candidate, job, &e.cfg)
	if err != nil {
		e.logger.Warn("collaborative signal unavailable",
			zap.String("candidate_id", candidate.ID.String()),
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
		return 0.0, false
	}
	return score, available
}

// confidence derives how much underlying data supported the score: half from
// the weight mass of the signals that were available, half from the
// completeness of the optional input fields. Independent of the score itself.
func (e *Engine) confidence(candidate *types.CandidateProfile, job *types.JobPosting, salaryData bool, availableWeight float64) float64 {
	coverage := 0.0
	if total := e.cfg.Weights.Total(); total > 0 {
		coverage = availableWeight / total
	}

	present := 0
	fields := []bool{
		len(candidate.Skills) > 0,
		len(job.RequiredSkills) > 0,
		salaryData,
		candidate.YearsExperience > 0,
		strings.TrimSpace(candidate.FreeText()) != "",
		strings.TrimSpace(job.FreeText()) != "",
	}
	for _, ok := range fields {
		if ok {
			present++
		}
	}
	completeness := float64(present) / float64(len(fields))

	return clamp01(0.5*coverage + 0.5*completeness)
}

// clamp01 bounds a score to [0,1]. Sub-scores are already in range by
// construction; this guards the aggregate against float drift.
func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
