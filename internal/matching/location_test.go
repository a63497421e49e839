package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-match/internal/types"
)

func TestScoreLocation_RemoteIgnoresLocation(t *testing.T) {
	cfg := DefaultConfig()
	job := &types.JobPosting{RemoteMode: types.RemoteFull, Location: "Berlin"}

	assert.Equal(t, 1.0, scoreLocation("Tokyo", job, &cfg))
	assert.Equal(t, 1.0, scoreLocation("", job, &cfg))
}

func TestScoreLocation_HybridFixedScore(t *testing.T) {
	cfg := DefaultConfig()
	job := &types.JobPosting{RemoteMode: types.RemoteHybrid, Location: "Berlin"}

	assert.Equal(t, 0.8, scoreLocation("Tokyo", job, &cfg))
	assert.Equal(t, 0.8, scoreLocation("Berlin", job, &cfg))
}

func TestScoreLocation_OnSiteSameCity(t *testing.T) {
	cfg := DefaultConfig()
	job := &types.JobPosting{RemoteMode: types.RemoteOnSite, Location: "Berlin"}

	assert.Equal(t, 1.0, scoreLocation("Berlin", job, &cfg))
	assert.Equal(t, 1.0, scoreLocation("berlin", job, &cfg), "comparison is case-insensitive")
	assert.Equal(t, 1.0, scoreLocation("  Berlin  ", job, &cfg), "comparison trims whitespace")
}

func TestScoreLocation_OnSiteMismatchIsLowNotZero(t *testing.T) {
	cfg := DefaultConfig()
	job := &types.JobPosting{RemoteMode: types.RemoteOnSite, Location: "Berlin"}

	score := scoreLocation("Tokyo", job, &cfg)

	assert.Greater(t, score, 0.0, "relocation stays possible")
	assert.Less(t, score, 0.5)
	assert.Equal(t, cfg.RelocationScore, score)
}
