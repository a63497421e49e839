// Package matching implements the hybrid candidate-job scoring engine.
//
// The engine combines structured attribute comparisons (skills, experience,
// location, salary) with content-based text similarity and a collaborative
// signal into one weighted overall score plus plain-text explanations.
package matching

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Weights holds the relative weight of each scoring signal. Weights are
// renormalized over the signals actually available for a given pair, so they
// need not sum to exactly 1; they must be non-negative and not all zero.
type Weights struct {
	Skill         float64 `json:"skill" mapstructure:"skill" validate:"gte=0"`
	Experience    float64 `json:"experience" mapstructure:"experience" validate:"gte=0"`
	Location      float64 `json:"location" mapstructure:"location" validate:"gte=0"`
	Salary        float64 `json:"salary" mapstructure:"salary" validate:"gte=0"`
	Content       float64 `json:"content" mapstructure:"content" validate:"gte=0"`
	Collaborative float64 `json:"collaborative" mapstructure:"collaborative" validate:"gte=0"`
}

// Total returns the sum of all configured weights.
func (w *Weights) Total() float64 {
	return w.Skill + w.Experience + w.Location + w.Salary + w.Content + w.Collaborative
}

// Config holds the tunable parameters of the scoring engine. Every constant
// the scorers rely on lives here with a documented default; none of them
// carries inherent meaning and all are candidates for product-level
// calibration.
type Config struct {
	Weights Weights `json:"weights" mapstructure:"weights"`

	// GoodThreshold is the sub-score at or above which a match reason is
	// generated. Default 0.7.
	GoodThreshold float64 `json:"good_threshold" mapstructure:"good_threshold" validate:"gte=0,lte=1"`

	// WeakThreshold is the sub-score below which an improvement suggestion is
	// generated. Default 0.5.
	WeakThreshold float64 `json:"weak_threshold" mapstructure:"weak_threshold" validate:"gte=0,lte=1"`

	// Neighbors is K for the collaborative signal: how many similar
	// candidates' interactions are aggregated. Default 5.
	Neighbors int `json:"neighbors" mapstructure:"neighbors" validate:"gte=1"`

	// HybridLocationScore is the fixed location score for hybrid roles,
	// independent of actual distance. Default 0.8.
	HybridLocationScore float64 `json:"hybrid_location_score" mapstructure:"hybrid_location_score" validate:"gte=0,lte=1"`

	// RelocationScore is the location score for an on-site role in a different
	// city. Low but not zero, to allow for relocation willingness. Default 0.3.
	RelocationScore float64 `json:"relocation_score" mapstructure:"relocation_score" validate:"gte=0,lte=1"`

	// SalaryNeutralScore is returned when either side omits its salary range.
	// Missing data is not a mismatch. Default 0.5.
	SalaryNeutralScore float64 `json:"salary_neutral_score" mapstructure:"salary_neutral_score" validate:"gte=0,lte=1"`

	// SalaryUnderbidScore is the score when the candidate's expectation sits
	// entirely below the job's range. Favorable to the employer, so it stays
	// above a 0.2 floor. Default 0.3.
	SalaryUnderbidScore float64 `json:"salary_underbid_score" mapstructure:"salary_underbid_score" validate:"gt=0.2,lte=1"`

	// SalaryOverbidScore is the score when the candidate expects more than the
	// job's entire range. Default 0.1.
	SalaryOverbidScore float64 `json:"salary_overbid_score" mapstructure:"salary_overbid_score" validate:"gte=0,lte=1"`

	// ExperienceGapPenalty is subtracted per level the candidate sits below
	// the required level. Default 0.35, so a one-level gap still scores 0.65.
	ExperienceGapPenalty float64 `json:"experience_gap_penalty" mapstructure:"experience_gap_penalty" validate:"gte=0,lte=1"`

	// ExperienceGapFloor bounds the score for large under-qualification gaps.
	// Default 0.05.
	ExperienceGapFloor float64 `json:"experience_gap_floor" mapstructure:"experience_gap_floor" validate:"gte=0,lte=1"`

	// OverqualifiedPenalty is subtracted per level the candidate sits above
	// the required level. Overqualification is never a hard failure. Default 0.05.
	OverqualifiedPenalty float64 `json:"overqualified_penalty" mapstructure:"overqualified_penalty" validate:"gte=0,lte=1"`

	// OverqualifiedFloor bounds the penalty for strongly overqualified
	// candidates. Default 0.7.
	OverqualifiedFloor float64 `json:"overqualified_floor" mapstructure:"overqualified_floor" validate:"gte=0,lte=1"`

	// CollaborativeTimeout bounds the interaction-store lookup so a slow
	// external store cannot stall a batch run. Default 2s.
	CollaborativeTimeout time.Duration `json:"collaborative_timeout" mapstructure:"collaborative_timeout" validate:"gt=0"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skill:         0.35,
			Experience:    0.20,
			Location:      0.15,
			Salary:        0.15,
			Content:       0.10,
			Collaborative: 0.05,
		},
		GoodThreshold:        0.7,
		WeakThreshold:        0.5,
		Neighbors:            5,
		HybridLocationScore:  0.8,
		RelocationScore:      0.3,
		SalaryNeutralScore:   0.5,
		SalaryUnderbidScore:  0.3,
		SalaryOverbidScore:   0.1,
		ExperienceGapPenalty: 0.35,
		ExperienceGapFloor:   0.05,
		OverqualifiedPenalty: 0.05,
		OverqualifiedFloor:   0.7,
		CollaborativeTimeout: 2 * time.Second,
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("matching config validation failed: %w", err)
	}
	if c.Weights.Total() <= 0 {
		return fmt.Errorf("matching config validation failed: weights must not all be zero")
	}
	if c.WeakThreshold > c.GoodThreshold {
		return fmt.Errorf("matching config validation failed: weak_threshold %v exceeds good_threshold %v",
			c.WeakThreshold, c.GoodThreshold)
	}
	return nil
}
