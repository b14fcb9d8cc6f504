// Package id defines TypeID-based identifiers for job records.
//
// Every JobRecord carries an ID with the "job" prefix. IDs are K-sortable
// (UUIDv7-based), globally unique, and URL-safe in the format "job_suffix".
package id

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// PrefixJob is the TypeID prefix used for all job record identifiers.
const PrefixJob = "job"

// ID is a prefix-qualified, globally unique, sortable identifier for a
// JobRecord.
type ID struct {
	inner typeid.TypeID
	valid bool
}

// Nil is the zero-value ID.
var Nil ID

// New generates a new globally unique job ID.
func New() ID {
	tid, err := typeid.Generate(PrefixJob)
	if err != nil {
		panic(fmt.Sprintf("id: invalid prefix %q: %v", PrefixJob, err))
	}

	return ID{inner: tid, valid: true}
}

// Parse parses a TypeID string (e.g., "job_01h2xcejqtf2nbrexx3vqjhp41")
// into an ID, validating that its prefix is "job".
func Parse(s string) (ID, error) {
	if s == "" {
		return Nil, fmt.Errorf("id: parse %q: empty string", s)
	}

	tid, err := typeid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("id: parse %q: %w", s, err)
	}
	if tid.Prefix() != PrefixJob {
		return Nil, fmt.Errorf("id: expected prefix %q, got %q", PrefixJob, tid.Prefix())
	}

	return ID{inner: tid, valid: true}, nil
}

// MustParse is like Parse but panics on error. Use for hardcoded ID values.
func MustParse(s string) ID {
	parsed, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("id: must parse %q: %v", s, err))
	}

	return parsed
}

// String returns the full TypeID string representation ("job_suffix").
// Returns an empty string for the Nil ID.
func (i ID) String() string {
	if !i.valid {
		return ""
	}

	return i.inner.String()
}

// IsNil reports whether this ID is the zero value.
func (i ID) IsNil() bool {
	return !i.valid
}

// MarshalText implements encoding.TextMarshaler.
func (i ID) MarshalText() ([]byte, error) {
	if !i.valid {
		return []byte{}, nil
	}

	return []byte(i.inner.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *ID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*i = Nil

		return nil
	}

	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}
