package ext_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/brightloop/chrono/ext"
	"github.com/brightloop/chrono/id"
)

// allHooksExt implements every lifecycle hook for testing.
type allHooksExt struct {
	calls []string
}

func (e *allHooksExt) Name() string { return "all-hooks" }

func (e *allHooksExt) OnJobFired(_ context.Context, _ id.ID, _ string, _ bool) error {
	e.calls = append(e.calls, "OnJobFired")
	return nil
}

func (e *allHooksExt) OnJobCompleted(_ context.Context, _ id.ID, _ string, _ time.Duration) error {
	e.calls = append(e.calls, "OnJobCompleted")
	return nil
}

func (e *allHooksExt) OnJobFailed(_ context.Context, _ id.ID, _ string, _ error) error {
	e.calls = append(e.calls, "OnJobFailed")
	return nil
}

func (e *allHooksExt) OnJobDisabled(_ context.Context, _ id.ID, _ string, _ string) error {
	e.calls = append(e.calls, "OnJobDisabled")
	return nil
}

// firedOnlyExt implements a single hook, to verify type-caching only
// invokes extensions that actually implement the relevant interface.
type firedOnlyExt struct {
	fired bool
}

func (e *firedOnlyExt) Name() string { return "fired-only" }

func (e *firedOnlyExt) OnJobFired(_ context.Context, _ id.ID, _ string, _ bool) error {
	e.fired = true
	return nil
}

// erroringExt always returns an error from its hook, to verify errors are
// logged but never propagated.
type erroringExt struct{}

func (e *erroringExt) Name() string { return "erroring" }

func (e *erroringExt) OnJobFired(_ context.Context, _ id.ID, _ string, _ bool) error {
	return errors.New("boom")
}

func TestRegistry_DispatchesToMatchingHooksOnly(t *testing.T) {
	r := ext.NewRegistry(slog.Default())
	all := &allHooksExt{}
	firedOnly := &firedOnlyExt{}
	r.Register(all)
	r.Register(firedOnly)

	r.EmitJobFired(context.Background(), id.New(), "job-a", false)

	if len(all.calls) != 1 || all.calls[0] != "OnJobFired" {
		t.Fatalf("unexpected calls on all-hooks extension: %v", all.calls)
	}
	if !firedOnly.fired {
		t.Fatal("expected fired-only extension to observe OnJobFired")
	}
}

func TestRegistry_EmitsAllFourHooks(t *testing.T) {
	r := ext.NewRegistry(slog.Default())
	all := &allHooksExt{}
	r.Register(all)

	jobID := id.New()
	r.EmitJobFired(context.Background(), jobID, "job-a", true)
	r.EmitJobCompleted(context.Background(), jobID, "job-a", time.Millisecond)
	r.EmitJobFailed(context.Background(), jobID, "job-a", errors.New("fail"))
	r.EmitJobDisabled(context.Background(), jobID, "job-a", "unignored failure")

	want := []string{"OnJobFired", "OnJobCompleted", "OnJobFailed", "OnJobDisabled"}
	if len(all.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %v", len(want), len(all.calls), all.calls)
	}
	for i, w := range want {
		if all.calls[i] != w {
			t.Errorf("calls[%d] = %q, want %q", i, all.calls[i], w)
		}
	}
}

func TestRegistry_HookErrorsDoNotPropagate(t *testing.T) {
	r := ext.NewRegistry(slog.Default())
	r.Register(&erroringExt{})

	// Must not panic or otherwise surface the hook's error.
	r.EmitJobFired(context.Background(), id.New(), "job-a", false)
}

func TestRegistry_ExtensionsReturnsRegistrationOrder(t *testing.T) {
	r := ext.NewRegistry(slog.Default())
	a := &allHooksExt{}
	b := &firedOnlyExt{}
	r.Register(a)
	r.Register(b)

	exts := r.Extensions()
	if len(exts) != 2 || exts[0] != ext.Extension(a) || exts[1] != ext.Extension(b) {
		t.Fatalf("unexpected registration order: %v", exts)
	}
}
