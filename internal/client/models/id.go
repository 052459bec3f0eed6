package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque resource identifier, kept in string form.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return id == "" }

// UnmarshalJSON accepts a JSON string, a JSON number, or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id %s: %w", b, err)
	}
	*id = ID(n.String())
	return nil
}

// IDPtr returns a pointer to id, or nil when id is empty. It is the
// parentId value for replies and top-level comments respectively.
func IDPtr(id ID) *ID {
	if id.IsZero() {
		return nil
	}
	return &id
}
