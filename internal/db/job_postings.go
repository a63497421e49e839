package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-match/internal/types"
)

// UpsertJobPosting stores a job posting, replacing any existing record with
// the same ID.
func (db *DB) UpsertJobPosting(ctx context.Context, job *types.JobPosting) error {
	if err := job.Validate(); err != nil {
		return err
	}

	skillsJSON, err := json.Marshal(job.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}

	var salaryMin, salaryMax *float64
	if job.Salary != nil {
		salaryMin = &job.Salary.Min
		salaryMax = &job.Salary.Max
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_postings (id, title, company, required_skills, experience_level,
		                           remote_mode, location, salary_min, salary_max,
		                           description, requirements, responsibilities)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		     title = $2, company = $3, required_skills = $4, experience_level = $5,
		     remote_mode = $6, location = $7, salary_min = $8, salary_max = $9,
		     description = $10, requirements = $11, responsibilities = $12,
		     updated_at = NOW()`,
		job.ID, job.Title, job.Company, skillsJSON, job.ExperienceLevel.String(),
		job.RemoteMode.String(), job.Location, salaryMin, salaryMax,
		job.Description, job.Requirements, job.Responsibilities,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job posting: %w", err)
	}
	return nil
}

// GetJobPosting retrieves a job posting by ID. Returns nil when no record
// exists.
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, title, company, required_skills, experience_level, remote_mode,
		        location, salary_min, salary_max, description, requirements, responsibilities
		 FROM job_postings WHERE id = $1`,
		id,
	)
	job, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return job, nil
}

// ListJobPostings retrieves all job postings ordered by ID.
func (db *DB) ListJobPostings(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, required_skills, experience_level, remote_mode,
		        location, salary_min, salary_max, description, requirements, responsibilities
		 FROM job_postings ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		job, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func scanJobPosting(row pgx.Row) (*types.JobPosting, error) {
	var j types.JobPosting
	var skillsJSON []byte
	var levelToken, modeToken string
	var salaryMin, salaryMax *float64

	err := row.Scan(&j.ID, &j.Title, &j.Company, &skillsJSON, &levelToken, &modeToken,
		&j.Location, &salaryMin, &salaryMax, &j.Description, &j.Requirements, &j.Responsibilities)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skillsJSON, &j.RequiredSkills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
	}
	level, err := types.ParseExperienceLevel(levelToken)
	if err != nil {
		return nil, err
	}
	j.ExperienceLevel = level
	mode, err := types.ParseRemoteMode(modeToken)
	if err != nil {
		return nil, err
	}
	j.RemoteMode = mode
	if salaryMin != nil && salaryMax != nil {
		j.Salary = &types.SalaryRange{Min: *salaryMin, Max: *salaryMax}
	}
	return &j, nil
}
