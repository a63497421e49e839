package matching

import "github.com/jonathan/talent-match/internal/types"

// scoreExperience compares the candidate's seniority level against the job's
// required level. An exact match scores 1.0. Each level under the requirement
// subtracts the configured gap penalty, floored so even large gaps keep a
// small positive score. Overqualified candidates still score well: each level
// over subtracts the (smaller) overqualification penalty, floored separately.
func scoreExperience(candidate, required types.ExperienceLevel, cfg *Config) float64 {
	gap := int(candidate) - int(required)
	switch {
	case gap == 0:
		return 1.0
	case gap < 0:
		score := 1.0 - float64(-gap)*cfg.ExperienceGapPenalty
		if score < cfg.ExperienceGapFloor {
			score = cfg.ExperienceGapFloor
		}
		return score
	default:
		score := 1.0 - float64(gap)*cfg.OverqualifiedPenalty
		if score < cfg.OverqualifiedFloor {
			score = cfg.OverqualifiedFloor
		}
		return score
	}
}
