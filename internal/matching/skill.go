package matching

import (
	"sort"
	"strings"
)

// neutralSkillScore is the defined score for a posting with no required
// skills: an empty requirement set constrains nothing, so any candidate
// satisfies it. Fixed here rather than computed to avoid an empty-set
// division.
const neutralSkillScore = 1.0

// normalizeSkill canonicalizes a skill name for comparison. Matching is
// case-insensitive and whitespace-insensitive at the edges.
func normalizeSkill(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// scoreSkills computes the fraction of the job's required skills present in
// the candidate's skill set, using set semantics so duplicates on either side
// are ignored. It also returns the matched and missing required skills in
// sorted order for explanation text.
func scoreSkills(candidateSkills, requiredSkills []string) (score float64, matched, missing []string) {
	required := make(map[string]bool)
	for _, skill := range requiredSkills {
		if normalized := normalizeSkill(skill); normalized != "" {
			required[normalized] = true
		}
	}
	if len(required) == 0 {
		return neutralSkillScore, nil, nil
	}

	have := make(map[string]bool)
	for _, skill := range candidateSkills {
		if normalized := normalizeSkill(skill); normalized != "" {
			have[normalized] = true
		}
	}

	for skill := range required {
		if have[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return float64(len(matched)) / float64(len(required)), matched, missing
}
