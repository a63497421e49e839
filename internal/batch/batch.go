// Package batch scores many (candidate, job) pairs concurrently. Pairs are
// independent; ordering of the result list is a caller-side concern applied
// after all scores are computed.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/types"
)

// PairError records a single pair's scoring failure. One bad record never
// aborts the rest of a batch.
type PairError struct {
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Err         error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("scoring candidate %s against job %s: %v", e.CandidateID, e.JobID, e.Err)
}

func (e *PairError) Unwrap() error {
	return e.Err
}

// Scorer runs an engine over batches of pairs with bounded concurrency.
type Scorer struct {
	engine      *matching.Engine
	logger      *zap.Logger
	concurrency int
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the scorer's logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scorer) { s.logger = logger }
}

// WithConcurrency bounds the number of pairs scored in parallel. Defaults to
// the number of CPUs.
func WithConcurrency(n int) Option {
	return func(s *Scorer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewScorer creates a batch scorer around the given engine.
func NewScorer(engine *matching.Engine, opts ...Option) *Scorer {
	s := &Scorer{
		engine:      engine,
		logger:      zap.NewNop(),
		concurrency: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScoreCandidates scores every candidate against one job. Results are
// positionally aligned with the input; a pair that failed has a nil result and
// an entry in the returned errors. Computation order never influences any
// individual result.
func (s *Scorer) ScoreCandidates(ctx context.Context, job *types.JobPosting, candidates []types.CandidateProfile) ([]*types.MatchScoreResult, []*PairError) {
	results := make([]*types.MatchScoreResult, len(candidates))
	failures := make([]*PairError, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range candidates {
		g.Go(func() error {
			result, err := s.engine.Compute(gCtx, &candidates[i], job)
			if err != nil {
				failures[i] = &PairError{CandidateID: candidates[i].ID, JobID: job.ID, Err: err}
				s.logger.Warn("pair scoring failed",
					zap.String("candidate_id", candidates[i].ID.String()),
					zap.String("job_id", job.ID.String()),
					zap.Error(err))
				return nil
			}
			results[i] = result
			return nil
		})
	}
	// Goroutines only report per-pair failures, never errors.
	_ = g.Wait()

	return results, compactErrors(failures)
}

// ScoreJobs scores one candidate against every job. Same contract as
// ScoreCandidates.
func (s *Scorer) ScoreJobs(ctx context.Context, candidate *types.CandidateProfile, jobs []types.JobPosting) ([]*types.MatchScoreResult, []*PairError) {
	results := make([]*types.MatchScoreResult, len(jobs))
	failures := make([]*PairError, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range jobs {
		g.Go(func() error {
			result, err := s.engine.Compute(gCtx, candidate, &jobs[i])
			if err != nil {
				failures[i] = &PairError{CandidateID: candidate.ID, JobID: jobs[i].ID, Err: err}
				s.logger.Warn("pair scoring failed",
					zap.String("candidate_id", candidate.ID.String()),
					zap.String("job_id", jobs[i].ID.String()),
					zap.Error(err))
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	return results, compactErrors(failures)
}

// SortByScore orders results by overall score descending, with candidate then
// job ID as deterministic tie-breaks, dropping nil entries from failed pairs.
func SortByScore(results []*types.MatchScoreResult) []*types.MatchScoreResult {
	sorted := make([]*types.MatchScoreResult, 0, len(results))
	for _, result := range results {
		if result != nil {
			sorted = append(sorted, result)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].OverallScore != sorted[j].OverallScore {
			return sorted[i].OverallScore > sorted[j].OverallScore
		}
		if sorted[i].CandidateID != sorted[j].CandidateID {
			return sorted[i].CandidateID.String() < sorted[j].CandidateID.String()
		}
		return sorted[i].JobID.String() < sorted[j].JobID.String()
	})
	return sorted
}

func compactErrors(failures []*PairError) []*PairError {
	compacted := make([]*PairError, 0)
	for _, failure := range failures {
		if failure != nil {
			compacted = append(compacted, failure)
		}
	}
	return compacted
}
