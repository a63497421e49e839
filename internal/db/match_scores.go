package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-match/internal/types"
)

// UpsertMatchScore stores a match score result keyed by (candidate, job). A
// new computation replaces the previous record; one active score per pair.
func (db *DB) UpsertMatchScore(ctx context.Context, result *types.MatchScoreResult) error {
	signalsJSON, err := json.Marshal(result.SignalsUsed)
	if err != nil {
		return fmt.Errorf("failed to marshal signals: %w", err)
	}
	reasonsJSON, err := json.Marshal(result.Reasons)
	if err != nil {
		return fmt.Errorf("failed to marshal reasons: %w", err)
	}
	suggestionsJSON, err := json.Marshal(result.Suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_scores (candidate_id, job_id, overall_score, skill_score,
		                           experience_score, location_score, salary_score,
		                           content_score, collaborative_score, signals_used,
		                           confidence, reasons, suggestions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE SET
		     overall_score = $3, skill_score = $4, experience_score = $5,
		     location_score = $6, salary_score = $7, content_score = $8,
		     collaborative_score = $9, signals_used = $10, confidence = $11,
		     reasons = $12, suggestions = $13, computed_at = NOW()`,
		result.CandidateID, result.JobID, result.OverallScore, result.SkillScore,
		result.ExperienceScore, result.LocationScore, result.SalaryScore,
		result.ContentScore, result.CollaborativeScore, signalsJSON,
		result.Confidence, reasonsJSON, suggestionsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match score: %w", err)
	}
	return nil
}

// GetMatchScore retrieves the active match score for a (candidate, job) pair.
// Returns nil when the pair has not been scored.
func (db *DB) GetMatchScore(ctx context.Context, candidateID, jobID uuid.UUID) (*types.MatchScoreResult, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT candidate_id, job_id, overall_score, skill_score, experience_score,
		        location_score, salary_score, content_score, collaborative_score,
		        signals_used, confidence, reasons, suggestions
		 FROM match_scores WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID,
	)
	result, err := scanMatchScore(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match score: %w", err)
	}
	return result, nil
}

// ListMatchesForJob retrieves the stored match scores for a job, ordered by
// overall score descending, limited to the given count.
func (db *DB) ListMatchesForJob(ctx context.Context, jobID uuid.UUID, limit int) ([]types.MatchScoreResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, job_id, overall_score, skill_score, experience_score,
		        location_score, salary_score, content_score, collaborative_score,
		        signals_used, confidence, reasons, suggestions
		 FROM match_scores WHERE job_id = $1
		 ORDER BY overall_score DESC, candidate_id
		 LIMIT $2`,
		jobID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var results []types.MatchScoreResult
	for rows.Next() {
		result, err := scanMatchScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match score: %w", err)
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

func scanMatchScore(row pgx.Row) (*types.MatchScoreResult, error) {
	var r types.MatchScoreResult
	var signalsJSON, reasonsJSON, suggestionsJSON []byte

	err := row.Scan(&r.CandidateID, &r.JobID, &r.OverallScore, &r.SkillScore,
		&r.ExperienceScore, &r.LocationScore, &r.SalaryScore, &r.ContentScore,
		&r.CollaborativeScore, &signalsJSON, &r.Confidence, &reasonsJSON, &suggestionsJSON)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(signalsJSON, &r.SignalsUsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signals: %w", err)
	}
	if err := json.Unmarshal(reasonsJSON, &r.Reasons); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reasons: %w", err)
	}
	if err := json.Unmarshal(suggestionsJSON, &r.Suggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
	}
	return &r, nil
}
