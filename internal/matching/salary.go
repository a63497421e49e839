package matching

import "github.com/jonathan/talent-match/internal/types"

// scoreSalary computes compatibility of the candidate's expectation range and
// the job's offered range. The returned dataPresent flag reports whether both
// ranges were supplied; when either is absent the score is the configured
// neutral value, never a failure.
//
// Overlapping ranges score the overlap normalized by the narrower span,
// saturating at 1.0 when the overlap equals one of the spans (full
// containment). A candidate whose expectation sits entirely below the offer is
// favorable to the employer and scores the configured underbid value, above
// the 0.2 floor. A candidate expecting more than the entire offered range
// scores the configured overbid value.
func scoreSalary(candidate, job *types.SalaryRange, cfg *Config) (score float64, dataPresent bool) {
	if candidate == nil || job == nil {
		return cfg.SalaryNeutralScore, false
	}

	// Single-point expectations or offers count as fully contained when they
	// fall inside the other range; their zero-width span would otherwise
	// zero out the overlap.
	if candidate.Span() == 0 && candidate.Min >= job.Min && candidate.Min <= job.Max {
		return 1.0, true
	}
	if job.Span() == 0 && job.Min >= candidate.Min && job.Min <= candidate.Max {
		return 1.0, true
	}

	low := candidate.Min
	if job.Min > low {
		low = job.Min
	}
	high := candidate.Max
	if job.Max < high {
		high = job.Max
	}
	overlap := high - low

	if overlap <= 0 {
		if candidate.Max <= job.Min {
			return cfg.SalaryUnderbidScore, true
		}
		return cfg.SalaryOverbidScore, true
	}

	narrower := candidate.Span()
	if job.Span() < narrower {
		narrower = job.Span()
	}
	score = overlap / narrower
	if score > 1.0 {
		score = 1.0
	}
	return score, true
}
