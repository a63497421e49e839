package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CandidateProfile is a job seeker's profile as owned by the profile-management
// collaborator. The matching engine reads these records and never mutates them.
type CandidateProfile struct {
	ID              uuid.UUID       `json:"id" validate:"required"`
	Name            string          `json:"name,omitempty"`
	Skills          []string        `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	YearsExperience float64         `json:"years_experience,omitempty" validate:"gte=0"`
	Location        string          `json:"location,omitempty"`
	SalaryExpectation *SalaryRange  `json:"salary_expectation,omitempty"`
	Headline        string          `json:"headline,omitempty"`
	Bio             string          `json:"bio,omitempty"`
}

// Validate checks the profile for malformed domain values using the validator
// plus the enum and range checks struct tags cannot express.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("candidate profile validation failed: %w", err)
	}
	if !c.ExperienceLevel.Valid() {
		return &ValidationError{Field: "experience_level", Message: fmt.Sprintf("invalid value %d", int(c.ExperienceLevel))}
	}
	if c.SalaryExpectation != nil {
		if err := c.SalaryExpectation.Validate("salary_expectation"); err != nil {
			return err
		}
	}
	return nil
}

// FreeText concatenates the candidate's free-text fields for content-based
// similarity scoring.
func (c *CandidateProfile) FreeText() string {
	parts := make([]string, 0, 2)
	for _, s := range []string{c.Headline, c.Bio} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
