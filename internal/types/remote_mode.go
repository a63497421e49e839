package types

import (
	"encoding/json"
	"fmt"
)

// RemoteMode is a closed enumeration of a job posting's remote-work policy.
// The zero value is invalid; postings must state their mode explicitly.
type RemoteMode int

const (
	RemoteOnSite RemoteMode = iota + 1
	RemoteHybrid
	RemoteFull
)

var remoteModeTokens = map[string]RemoteMode{
	"on_site": RemoteOnSite,
	"hybrid":  RemoteHybrid,
	"remote":  RemoteFull,
}

// ParseRemoteMode converts a wire token into a RemoteMode.
// Unknown tokens return a ValidationError naming the field.
func ParseRemoteMode(token string) (RemoteMode, error) {
	if mode, ok := remoteModeTokens[token]; ok {
		return mode, nil
	}
	return 0, &ValidationError{Field: "remote_mode", Message: fmt.Sprintf("unknown token %q", token)}
}

// Valid reports whether the mode is one of the defined enumeration values.
func (m RemoteMode) Valid() bool {
	return m >= RemoteOnSite && m <= RemoteFull
}

// String returns the wire token for the mode.
func (m RemoteMode) String() string {
	switch m {
	case RemoteOnSite:
		return "on_site"
	case RemoteHybrid:
		return "hybrid"
	case RemoteFull:
		return "remote"
	}
	return fmt.Sprintf("remote_mode(%d)", int(m))
}

// MarshalJSON encodes the mode as its wire token.
func (m RemoteMode) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, &ValidationError{Field: "remote_mode", Message: fmt.Sprintf("invalid value %d", int(m))}
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a wire token into the mode.
func (m *RemoteMode) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return &ValidationError{Field: "remote_mode", Message: "expected a string token"}
	}
	parsed, err := ParseRemoteMode(token)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
