package types

import "github.com/google/uuid"

// Signal identifies one scoring dimension of the hybrid matcher.
type Signal string

const (
	SignalSkill         Signal = "skill"
	SignalExperience    Signal = "experience"
	SignalLocation      Signal = "location"
	SignalSalary        Signal = "salary"
	SignalContent       Signal = "content"
	SignalCollaborative Signal = "collaborative"
)

// MatchScoreResult is the immutable output of one scoring run for a
// (candidate, job) pair. A new computation replaces the whole record; nothing
// is updated in place. Storage collaborators upsert on (CandidateID, JobID).
type MatchScoreResult struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`

	// OverallScore and every sub-score lie in [0,1].
	OverallScore       float64 `json:"overall_score"`
	SkillScore         float64 `json:"skill_score"`
	ExperienceScore    float64 `json:"experience_score"`
	LocationScore      float64 `json:"location_score"`
	SalaryScore        float64 `json:"salary_score"`
	ContentScore       float64 `json:"content_score"`
	CollaborativeScore float64 `json:"collaborative_score"`

	// SignalsUsed lists the signals that contributed to the weighted sum,
	// in fixed priority order. Content and collaborative are best-effort and
	// absent here when their data was unavailable.
	SignalsUsed []Signal `json:"signals_used"`

	// Confidence reflects how much underlying data supported the score,
	// independent of the score itself. Lies in [0,1].
	Confidence float64 `json:"confidence"`

	// Reasons and Suggestions are plain-text, markup-free strings in priority
	// order, ready for the notification collaborator to render.
	Reasons     []string `json:"reasons"`
	Suggestions []string `json:"suggestions"`
}

// SubScore returns the named sub-score and whether the signal contributed to
// the weighted sum.
func (r *MatchScoreResult) SubScore(signal Signal) (float64, bool) {
	var score float64
	switch signal {
	case SignalSkill:
		score = r.SkillScore
	case SignalExperience:
		score = r.ExperienceScore
	case SignalLocation:
		score = r.LocationScore
	case SignalSalary:
		score = r.SalaryScore
	case SignalContent:
		score = r.ContentScore
	case SignalCollaborative:
		score = r.CollaborativeScore
	default:
		return 0, false
	}
	for _, used := range r.SignalsUsed {
		if used == signal {
			return score, true
		}
	}
	return score, false
}
