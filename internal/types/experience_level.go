// Package types provides type definitions for structured data used throughout the talent-match system.
package types

import (
	"encoding/json"
	"fmt"
)

// ExperienceLevel is a closed ordinal enumeration of seniority levels.
// The ordering is meaningful: Entry < Mid < Senior < Lead < Executive.
// The zero value is invalid so that an unset level fails validation
// instead of silently scoring as entry-level.
type ExperienceLevel int

const (
	ExperienceEntry ExperienceLevel = iota + 1
	ExperienceMid
	ExperienceSenior
	ExperienceLead
	ExperienceExecutive
)

// experienceLevelTokens maps wire tokens to levels. Tokens match the
// string-backed values used by upstream profile records.
var experienceLevelTokens = map[string]ExperienceLevel{
	"entry":     ExperienceEntry,
	"mid":       ExperienceMid,
	"senior":    ExperienceSenior,
	"lead":      ExperienceLead,
	"executive": ExperienceExecutive,
}

// ParseExperienceLevel converts a wire token into an ExperienceLevel.
// Unknown tokens return a ValidationError naming the field.
func ParseExperienceLevel(token string) (ExperienceLevel, error) {
	if level, ok := experienceLevelTokens[token]; ok {
		return level, nil
	}
	return 0, &ValidationError{Field: "experience_level", Message: fmt.Sprintf("unknown token %q", token)}
}

// Valid reports whether the level is one of the defined enumeration values.
func (l ExperienceLevel) Valid() bool {
	return l >= ExperienceEntry && l <= ExperienceExecutive
}

// String returns the wire token for the level.
func (l ExperienceLevel) String() string {
	switch l {
	case ExperienceEntry:
		return "entry"
	case ExperienceMid:
		return "mid"
	case ExperienceSenior:
		return "senior"
	case ExperienceLead:
		return "lead"
	case ExperienceExecutive:
		return "executive"
	}
	return fmt.Sprintf("experience_level(%d)", int(l))
}

// MarshalJSON encodes the level as its wire token.
func (l ExperienceLevel) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, &ValidationError{Field: "experience_level", Message: fmt.Sprintf("invalid value %d", int(l))}
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a wire token into the level.
func (l *ExperienceLevel) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return &ValidationError{Field: "experience_level", Message: "expected a string token"}
	}
	parsed, err := ParseExperienceLevel(token)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
