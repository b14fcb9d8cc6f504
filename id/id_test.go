package id_test

import (
	"strings"
	"testing"

	"github.com/brightloop/chrono/id"
)

func TestNew(t *testing.T) {
	i := id.New()
	if i.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if !strings.HasPrefix(i.String(), "job_") {
		t.Errorf("expected prefix %q, got %q", "job_", i.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	original := id.New()
	parsed, err := id.Parse(original.String())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.String() != original.String() {
		t.Errorf("round-trip mismatch: %q != %q", parsed.String(), original.String())
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := id.Parse(""); err == nil {
		t.Error("expected error for empty string")
	}
}

func TestParseWrongPrefix(t *testing.T) {
	// A syntactically valid TypeID with a different prefix must be rejected.
	if _, err := id.Parse("wf_01h2xcejqtf2nbrexx3vqjhp41"); err == nil {
		t.Error("expected error for mismatched prefix")
	}
}

func TestNilID(t *testing.T) {
	var i id.ID
	if !i.IsNil() {
		t.Error("zero-value ID should be nil")
	}
	if i.String() != "" {
		t.Errorf("expected empty string, got %q", i.String())
	}
}

func TestMarshalUnmarshalText(t *testing.T) {
	original := id.New()
	data, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	var restored id.ID
	if unmarshalErr := restored.UnmarshalText(data); unmarshalErr != nil {
		t.Fatalf("UnmarshalText failed: %v", unmarshalErr)
	}
	if restored.String() != original.String() {
		t.Errorf("mismatch: %q != %q", restored.String(), original.String())
	}

	var nilID id.ID
	data, err = nilID.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText(nil) failed: %v", err)
	}
	var restored2 id.ID
	if err := restored2.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText(nil) failed: %v", err)
	}
	if !restored2.IsNil() {
		t.Error("expected nil after round-trip of nil ID")
	}
}

func TestUniqueness(t *testing.T) {
	a := id.New()
	b := id.New()
	if a.String() == b.String() {
		t.Errorf("two consecutive New() calls returned the same ID: %q", a.String())
	}
}
