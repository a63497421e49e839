package types

import "fmt"

// SalaryRange is an inclusive compensation range in a single currency unit.
// Candidates and jobs may omit it entirely; a present range must be well formed.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate checks the range for malformed values.
func (r *SalaryRange) Validate(field string) error {
	if r.Min < 0 {
		return &ValidationError{Field: field + ".min", Message: fmt.Sprintf("must not be negative, got %v", r.Min)}
	}
	if r.Max < r.Min {
		return &ValidationError{Field: field + ".max", Message: fmt.Sprintf("must not be below min (%v), got %v", r.Min, r.Max)}
	}
	return nil
}

// Span returns the width of the range.
func (r *SalaryRange) Span() float64 {
	return r.Max - r.Min
}
