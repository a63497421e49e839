package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// buildReasons generates human-readable match reasons for sub-scores at or
// above the good threshold, in fixed priority order (skill first). All output
// is plain text with no markup; the notification collaborator renders it
// verbatim.
func buildReasons(signals []signalScore, matched []string, candidate *types.CandidateProfile, job *types.JobPosting, cfg *Config) []string {
	reasons := make([]string, 0, len(signals))
	for _, s := range signals {
		if !s.available || s.score < cfg.GoodThreshold {
			continue
		}
		switch s.signal {
		case types.SignalSkill:
			if len(matched) > 0 {
				reasons = append(reasons, fmt.Sprintf("Strong skill match (%s)", strings.Join(matched, ", ")))
			} else {
				reasons = append(reasons, "Meets the role's skill requirements")
			}
		case types.SignalExperience:
			if s.score == 1.0 {
				reasons = append(reasons, fmt.Sprintf("Experience level matches the role exactly (%s)", job.ExperienceLevel))
			} else {
				reasons = append(reasons, "Experience level is close to the role's requirement")
			}
		case types.SignalLocation:
			switch job.RemoteMode {
			case types.RemoteFull:
				reasons = append(reasons, "Role is fully remote")
			case types.RemoteHybrid:
				reasons = append(reasons, "Hybrid role offers location flexibility")
			case types.RemoteOnSite:
				reasons = append(reasons, fmt.Sprintf("Located in the role's city (%s)", job.Location))
			}
		case types.SignalSalary:
			reasons = append(reasons, "Salary expectation aligns with the offered range")
		case types.SignalContent:
			reasons = append(reasons, "Profile text closely matches the job description")
		case types.SignalCollaborative:
			reasons = append(reasons, "Similar candidates engaged positively with this job")
		}
	}
	return reasons
}

// buildSuggestions generates actionable improvement suggestions for available
// sub-scores below the weak threshold, in the same priority order as reasons.
func buildSuggestions(signals []signalScore, missing []string, candidate *types.CandidateProfile, job *types.JobPosting, cfg *Config) []string {
	suggestions := make([]string, 0, len(signals))
	for _, s := range signals {
		if !s.available || s.score >= cfg.WeakThreshold {
			continue
		}
		switch s.signal {
		case types.SignalSkill:
			if len(missing) > 0 {
				suggestions = append(suggestions, fmt.Sprintf("Consider highlighting %s experience", strings.Join(missing, ", ")))
			}
		case types.SignalExperience:
			if candidate.ExperienceLevel < job.ExperienceLevel {
				suggestions = append(suggestions, fmt.Sprintf("Role targets %s level; emphasize achievements that show %s-level scope", job.ExperienceLevel, job.ExperienceLevel))
			}
		case types.SignalLocation:
			if job.RemoteMode == types.RemoteOnSite && job.Location != "" {
				suggestions = append(suggestions, fmt.Sprintf("Role is on-site in %s; indicate willingness to relocate if applicable", job.Location))
			}
		case types.SignalSalary:
			suggestions = append(suggestions, "Salary expectation diverges from the offered range; consider adjusting it")
		case types.SignalContent:
			suggestions = append(suggestions, "Profile text shares little vocabulary with the job description; expand the bio with relevant detail")
		}
	}
	return suggestions
}
