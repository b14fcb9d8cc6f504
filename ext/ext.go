// Package ext defines the lifecycle hook system for the scheduler.
// Extensions are notified of job fire/completion/failure/disable events
// and can react to them — logging, metrics, alerting, etc.
//
// Each lifecycle hook is a separate interface so extensions opt in only
// to the events they care about. Hooks receive plain id/name/error/
// duration values rather than the scheduler's JobRecord type, so this
// package has no dependency on the root package.
package ext

import (
	"context"
	"time"

	"github.com/brightloop/chrono/id"
)

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// JobFired is called whenever a record begins executing, manual or
// automatic.
type JobFired interface {
	OnJobFired(ctx context.Context, jobID id.ID, jobName string, manual bool) error
}

// JobCompleted is called after a job execution finishes successfully.
type JobCompleted interface {
	OnJobCompleted(ctx context.Context, jobID id.ID, jobName string, elapsed time.Duration) error
}

// JobFailed is called when a job execution returns an error (including a
// recovered panic).
type JobFailed interface {
	OnJobFailed(ctx context.Context, jobID id.ID, jobName string, err error) error
}

// JobDisabled is called when a record is disabled as the consequence of an
// unignored failure. An explicit SetEnabled(false) does not emit it.
type JobDisabled interface {
	OnJobDisabled(ctx context.Context, jobID id.ID, jobName string, reason string) error
}
