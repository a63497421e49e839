package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InteractionType is a closed enumeration of candidate-to-job interaction kinds
// recorded by the interaction-logging collaborator.
type InteractionType int

const (
	InteractionView InteractionType = iota + 1
	InteractionSave
	InteractionApply
)

var interactionTypeTokens = map[string]InteractionType{
	"view":  InteractionView,
	"save":  InteractionSave,
	"apply": InteractionApply,
}

// ParseInteractionType converts a wire token into an InteractionType.
func ParseInteractionType(token string) (InteractionType, error) {
	if t, ok := interactionTypeTokens[token]; ok {
		return t, nil
	}
	return 0, &ValidationError{Field: "interaction_type", Message: fmt.Sprintf("unknown token %q", token)}
}

// Valid reports whether the type is one of the defined enumeration values.
func (t InteractionType) Valid() bool {
	return t >= InteractionView && t <= InteractionApply
}

// String returns the wire token for the type.
func (t InteractionType) String() string {
	switch t {
	case InteractionView:
		return "view"
	case InteractionSave:
		return "save"
	case InteractionApply:
		return "apply"
	}
	return fmt.Sprintf("interaction_type(%d)", int(t))
}

// ImplicitValue returns the implicit-feedback strength of the interaction,
// in [0,1]. Applying is the strongest positive signal.
func (t InteractionType) ImplicitValue() float64 {
	switch t {
	case InteractionView:
		return 0.3
	case InteractionSave:
		return 0.6
	case InteractionApply:
		return 1.0
	}
	return 0.0
}

// MarshalJSON encodes the type as its wire token.
func (t InteractionType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &ValidationError{Field: "interaction_type", Message: fmt.Sprintf("invalid value %d", int(t))}
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a wire token into the type.
func (t *InteractionType) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return &ValidationError{Field: "interaction_type", Message: "expected a string token"}
	}
	parsed, err := ParseInteractionType(token)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Interaction is one historical candidate-to-job event from the interaction
// log. The engine reads these; it never writes them.
type Interaction struct {
	CandidateID uuid.UUID       `json:"candidate_id"`
	JobID       uuid.UUID       `json:"job_id"`
	Type        InteractionType `json:"type"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
