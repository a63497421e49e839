// Package schemas validates candidate and job-posting JSON documents against
// their embedded JSON Schemas before they reach the scoring engine.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed candidate.schema.json
var candidateSchema string

//go:embed job_posting.schema.json
var jobPostingSchema string

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports one or more schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateCandidate checks a candidate-profile JSON document against the
// embedded schema.
func ValidateCandidate(document []byte) error {
	return validate(candidateSchema, document)
}

// ValidateJobPosting checks a job-posting JSON document against the embedded
// schema.
func ValidateJobPosting(document []byte) error {
	return validate(jobPostingSchema, document)
}

func validate(schema string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
