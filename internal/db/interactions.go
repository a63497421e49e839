package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/talent-match/internal/types"
)

// RecordInteraction appends one candidate-to-job interaction to the log.
func (db *DB) RecordInteraction(ctx context.Context, interaction *types.Interaction) error {
	if !interaction.Type.Valid() {
		return &types.ValidationError{Field: "interaction_type", Message: fmt.Sprintf("invalid value %d", int(interaction.Type))}
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO interactions (candidate_id, job_id, type, occurred_at)
		 VALUES ($1, $2, $3, $4)`,
		interaction.CandidateID, interaction.JobID, interaction.Type.String(), interaction.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record interaction: %w", err)
	}
	return nil
}

// ActiveCandidates returns the profiles of candidates with at least one
// recorded interaction, ordered by ID. Satisfies matching.InteractionStore.
func (db *DB) ActiveCandidates(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT DISTINCT c.id, c.name, c.skills, c.experience_level, c.years_experience,
		        c.location, c.salary_min, c.salary_max, c.headline, c.bio
		 FROM candidates c
		 JOIN interactions i ON i.candidate_id = c.id
		 ORDER BY c.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query active candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateProfile
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan active candidate: %w", err)
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, rows.Err()
}

// InteractionsForJob returns all recorded interactions on the given job.
// Satisfies matching.InteractionStore.
func (db *DB) InteractionsForJob(ctx context.Context, jobID uuid.UUID) ([]types.Interaction, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, job_id, type, occurred_at
		 FROM interactions WHERE job_id = $1 ORDER BY id`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	var interactions []types.Interaction
	for rows.Next() {
		var interaction types.Interaction
		var typeToken string
		if err := rows.Scan(&interaction.CandidateID, &interaction.JobID, &typeToken, &interaction.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		parsed, err := types.ParseInteractionType(typeToken)
		if err != nil {
			return nil, err
		}
		interaction.Type = parsed
		interactions = append(interactions, interaction)
	}
	return interactions, rows.Err()
}
