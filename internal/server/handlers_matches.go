package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/talent-match/internal/batch"
	"github.com/jonathan/talent-match/internal/types"
)

// isValidationError reports whether the scoring failure was caused by
// malformed input rather than an internal fault.
func isValidationError(err error) bool {
	var domainErr *types.ValidationError
	if errors.As(err, &domainErr) {
		return true
	}
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// MatchRequest carries one (candidate, job) pair to score.
type MatchRequest struct {
	Candidate *types.CandidateProfile `json:"candidate"`
	Job       *types.JobPosting       `json:"job"`
	// Persist stores the result when a database is configured.
	Persist bool `json:"persist,omitempty"`
}

// MatchBatchRequest carries one job and many candidates.
type MatchBatchRequest struct {
	Job        *types.JobPosting        `json:"job"`
	Candidates []types.CandidateProfile `json:"candidates"`
	Persist    bool                     `json:"persist,omitempty"`
}

// MatchBatchResponse returns the ranked results plus per-pair failures.
type MatchBatchResponse struct {
	Results  []*types.MatchScoreResult `json:"results"`
	Failures []string                  `json:"failures,omitempty"`
}

// handleMatch scores a single candidate against a single job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.engine.Compute(r.Context(), req.Candidate, req.Job)
	if err != nil {
		if isValidationError(err) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Scoring failed: "+err.Error())
		return
	}

	if req.Persist {
		if s.db == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "No database configured for persistence")
			return
		}
		if err := s.db.UpsertMatchScore(r.Context(), result); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store match score: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleMatchBatch scores many candidates against one job and returns them
// ranked by overall score.
func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req MatchBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Job == nil {
		s.errorResponse(w, http.StatusBadRequest, "job is required")
		return
	}
	if len(req.Candidates) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "candidates must not be empty")
		return
	}

	results, failures := s.scorer.ScoreCandidates(r.Context(), req.Job, req.Candidates)
	ranked := batch.SortByScore(results)

	if req.Persist {
		if s.db == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "No database configured for persistence")
			return
		}
		for _, result := range ranked {
			if err := s.db.UpsertMatchScore(r.Context(), result); err != nil {
				s.errorResponse(w, http.StatusInternalServerError, "Failed to store match score: "+err.Error())
				return
			}
		}
	}

	resp := MatchBatchResponse{Results: ranked}
	for _, failure := range failures {
		resp.Failures = append(resp.Failures, failure.Error())
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleJobMatches lists stored match scores for a job, best first.
func (s *Server) handleJobMatches(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	limit := parseQueryInt(r, "limit", 50, 200)

	matches, err := s.db.ListMatchesForJob(r.Context(), jobID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches": matches,
		"count":   len(matches),
	})
}

// parseQueryInt reads an integer query parameter with a default and an upper
// cap (0 means uncapped).
func parseQueryInt(r *http.Request, name string, defaultValue, maxValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	if maxValue > 0 && value > maxValue {
		return maxValue
	}
	return value
}
