package types

import "fmt"

// ValidationError reports a malformed domain value. The engine fails fast on
// these rather than coercing bad input into a valid-looking score.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
