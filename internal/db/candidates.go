package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-match/internal/types"
)

// UpsertCandidate stores a candidate profile, replacing any existing record
// with the same ID.
func (db *DB) UpsertCandidate(ctx context.Context, candidate *types.CandidateProfile) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	skillsJSON, err := json.Marshal(candidate.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	var salaryMin, salaryMax *float64
	if candidate.SalaryExpectation != nil {
		salaryMin = &candidate.SalaryExpectation.Min
		salaryMax = &candidate.SalaryExpectation.Max
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, skills, experience_level, years_experience,
		                         location, salary_min, salary_max, headline, bio)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		     name = $2, skills = $3, experience_level = $4, years_experience = $5,
		     location = $6, salary_min = $7, salary_max = $8, headline = $9,
		     bio = $10, updated_at = NOW()`,
		candidate.ID, candidate.Name, skillsJSON, candidate.ExperienceLevel.String(),
		candidate.YearsExperience, candidate.Location, salaryMin, salaryMax,
		candidate.Headline, candidate.Bio,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate: %w", err)
	}
	return nil
}

// GetCandidate retrieves a candidate profile by ID. Returns nil when no record
// exists.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, name, skills, experience_level, years_experience,
		        location, salary_min, salary_max, headline, bio
		 FROM candidates WHERE id = $1`,
		id,
	)
	candidate, err := scanCandidate(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

// ListCandidates retrieves all candidate profiles ordered by ID.
func (db *DB) ListCandidates(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, skills, experience_level, years_experience,
		        location, salary_min, salary_max, headline, bio
		 FROM candidates ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateProfile
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, rows.Err()
}

func scanCandidate(row pgx.Row) (*types.CandidateProfile, error) {
	var c types.CandidateProfile
	var skillsJSON []byte
	var levelToken string
	var salaryMin, salaryMax *float64

	err := row.Scan(&c.ID, &c.Name, &skillsJSON, &levelToken, &c.YearsExperience,
		&c.Location, &salaryMin, &salaryMax, &c.Headline, &c.Bio)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skillsJSON, &c.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	level, err := types.ParseExperienceLevel(levelToken)
	if err != nil {
		return nil, err
	}
	c.ExperienceLevel = level
	if salaryMin != nil && salaryMax != nil {
		c.SalaryExpectation = &types.SalaryRange{Min: *salaryMin, Max: *salaryMax}
	}
	return &c, nil
}
