package chrono

import (
	"context"
	"log/slog"
	"time"

	"github.com/brightloop/chrono/id"
	"github.com/brightloop/chrono/schedule"
)

// Job is a name plus an asynchronous operation. The scheduler does not
// inspect a Job's behaviour; it is opaque from the scheduler's
// perspective.
type Job interface {
	// Name identifies the job for logging, metrics, and tracing.
	Name() string
	// Run executes the job. It must honour ctx cancellation.
	Run(ctx context.Context, state JobState) error
}

// JobState is passed to every Run call, giving the job access to the
// context the scheduler fired it under.
type JobState interface {
	// ID returns the owning JobRecord's identifier.
	ID() id.ID
	// Name returns the job's name.
	Name() string
	// Engine returns the Scheduler this execution is running under, or
	// nil if the record has been detached (TryRemove) since it was fired.
	Engine() *Scheduler
	// Schedule returns the record's schedule, or ok=false if this
	// execution was triggered manually.
	Schedule() (schedule.Schedule, bool)
	// Due returns the due time this execution was fired for.
	Due() time.Time
	// Logger returns the scheduler's configured logger.
	Logger() *slog.Logger
	// IsManual reports whether this execution was triggered by an
	// explicit out-of-band call rather than the tick loop.
	IsManual() bool
	// IsExecuting reports whether the record currently has an
	// in-flight execution (always true from inside Run).
	IsExecuting() bool
	// IsEnabled reads the record's enabled flag.
	IsEnabled() bool
	// SetEnabled writes the record's enabled flag. Setting it to false
	// from within Run prevents further fires without waiting for a
	// failure to do so.
	SetEnabled(enabled bool)
}

// funcJob adapts a plain function to the Job interface.
type funcJob struct {
	name string
	fn   func(ctx context.Context, state JobState) error
}

// FuncJob wraps fn as a Job named name, so callers rarely need to
// implement the Job interface by hand.
func FuncJob(name string, fn func(ctx context.Context, state JobState) error) Job {
	return &funcJob{name: name, fn: fn}
}

func (j *funcJob) Name() string { return j.name }

func (j *funcJob) Run(ctx context.Context, state JobState) error {
	return j.fn(ctx, state)
}
