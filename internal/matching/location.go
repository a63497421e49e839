package matching

import (
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// scoreLocation evaluates location compatibility by the job's remote policy.
// Fully remote roles ignore location entirely. Hybrid roles score a fixed
// partial-flexibility value. On-site roles require the same city; a mismatch
// scores the configured relocation value rather than zero.
func scoreLocation(candidateLocation string, job *types.JobPosting, cfg *Config) float64 {
	switch job.RemoteMode {
	case types.RemoteFull:
		return 1.0
	case types.RemoteHybrid:
		return cfg.HybridLocationScore
	case types.RemoteOnSite:
		if strings.EqualFold(strings.TrimSpace(candidateLocation), strings.TrimSpace(job.Location)) {
			return 1.0
		}
		return cfg.RelocationScore
	}
	// Unreachable for validated postings; treat like an on-site mismatch.
	return cfg.RelocationScore
}
