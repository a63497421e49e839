package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobPosting is an employer's role description as owned by the job-posting
// collaborator. The matching engine reads these records and never mutates them.
type JobPosting struct {
	ID               uuid.UUID       `json:"id" validate:"required"`
	Title            string          `json:"title" validate:"required"`
	Company          string          `json:"company,omitempty"`
	RequiredSkills   []string        `json:"required_skills"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	RemoteMode       RemoteMode      `json:"remote_mode"`
	Location         string          `json:"location,omitempty"`
	Salary           *SalaryRange    `json:"salary,omitempty"`
	Description      string          `json:"description,omitempty"`
	Requirements     string          `json:"requirements,omitempty"`
	Responsibilities string          `json:"responsibilities,omitempty"`
}

// Validate checks the posting for malformed domain values.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("job posting validation failed: %w", err)
	}
	if !j.ExperienceLevel.Valid() {
		return &ValidationError{Field: "experience_level", Message: fmt.Sprintf("invalid value %d", int(j.ExperienceLevel))}
	}
	if !j.RemoteMode.Valid() {
		return &ValidationError{Field: "remote_mode", Message: fmt.Sprintf("invalid value %d", int(j.RemoteMode))}
	}
	if j.Salary != nil {
		if err := j.Salary.Validate("salary"); err != nil {
			return err
		}
	}
	return nil
}

// FreeText concatenates the posting's free-text fields for content-based
// similarity scoring.
func (j *JobPosting) FreeText() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{j.Title, j.Description, j.Requirements, j.Responsibilities} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
