package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-match/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchResult(&types.MatchScoreResult{
		CandidateID:  uuid.New(),
		JobID:        uuid.New(),
		OverallScore: 0.842,
		SkillScore:   0.75,
		ContentScore: 0.6,
		SignalsUsed:  []types.Signal{types.SignalSkill, types.SignalContent},
		Confidence:   0.9,
		Reasons:      []string{"Strong skill match (go, postgres)"},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH SCORE")
	assert.Contains(t, out, "0.842")
	assert.Contains(t, out, "Content:")
	assert.NotContains(t, out, "Collab:")
	assert.Contains(t, out, "Strong skill match")
}

func TestPrintMatchResult_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRankedMatches_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	results := make([]*types.MatchScoreResult, 8)
	for i := range results {
		results[i] = &types.MatchScoreResult{
			CandidateID:  uuid.New(),
			OverallScore: 0.9 - float64(i)*0.1,
		}
	}
	printer.PrintRankedMatches(results)

	out := buf.String()
	assert.Contains(t, out, "Total pairs scored: 8")
	assert.Contains(t, out, "#5")
	assert.NotContains(t, out, "#6")
	assert.Contains(t, out, "and 3 more")
}
