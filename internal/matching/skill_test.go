package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSkills_AllRequiredPresent(t *testing.T) {
	score, matched, missing := scoreSkills(
		[]string{"Go", "Python", "Kubernetes"},
		[]string{"Go", "Python"},
	)

	assert.Equal(t, 1.0, score)
	assert.Equal(t, []string{"go", "python"}, matched)
	assert.Empty(t, missing)
}

func TestScoreSkills_NonePresent(t *testing.T) {
	score, matched, missing := scoreSkills(
		[]string{"Ruby", "Rails"},
		[]string{"Go", "Python"},
	)

	assert.Equal(t, 0.0, score)
	assert.Empty(t, matched)
	assert.Equal(t, []string{"go", "python"}, missing)
}

func TestScoreSkills_PartialOverlap(t *testing.T) {
	score, matched, missing := scoreSkills(
		[]string{"Python", "JavaScript", "React"},
		[]string{"Python", "JavaScript", "React", "Machine Learning"},
	)

	assert.Equal(t, 0.75, score)
	assert.Equal(t, []string{"javascript", "python", "react"}, matched)
	assert.Equal(t, []string{"machine learning"}, missing)
}

func TestScoreSkills_CaseInsensitive(t *testing.T) {
	score, _, _ := scoreSkills(
		[]string{"PYTHON", "  go  "},
		[]string{"python", "Go"},
	)

	assert.Equal(t, 1.0, score)
}

func TestScoreSkills_DuplicatesIgnored(t *testing.T) {
	// Duplicate requirements collapse to one; duplicate candidate skills
	// cannot inflate the score.
	score, _, _ := scoreSkills(
		[]string{"Go", "Go", "Go"},
		[]string{"Go", "go", "Python"},
	)

	assert.Equal(t, 0.5, score)
}

func TestScoreSkills_EmptyRequirementsIsNeutral(t *testing.T) {
	score, matched, missing := scoreSkills([]string{"Go"}, nil)

	assert.Equal(t, neutralSkillScore, score)
	assert.Empty(t, matched)
	assert.Empty(t, missing)
}

func TestScoreSkills_BlankRequirementsIsNeutral(t *testing.T) {
	score, _, _ := scoreSkills([]string{"Go"}, []string{"  ", ""})

	assert.Equal(t, neutralSkillScore, score)
}
