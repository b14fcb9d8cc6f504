package chrono

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brightloop/chrono/id"
	"github.com/brightloop/chrono/middleware"
	"github.com/brightloop/chrono/schedule"
)

// JobRecord binds a Job to a Schedule inside a Scheduler. It owns the
// record's due time, enabled flag, and single-flight execution handle.
// A JobRecord returned by Add remains valid after TryRemove, but its
// operations become no-ops once detached.
type JobRecord struct {
	id       id.ID
	job      Job
	schedule schedule.Schedule

	engineMu sync.RWMutex
	engine   *Scheduler

	mu      sync.Mutex
	enabled bool
	manual  bool
	due     time.Time
	haveDue bool

	handle atomic.Pointer[Execution]
}

func newJobRecord(engine *Scheduler, job Job, sched schedule.Schedule) *JobRecord {
	return &JobRecord{
		id:       id.New(),
		job:      job,
		schedule: sched,
		engine:   engine,
		enabled:  true,
	}
}

// ID returns the record's identifier.
func (r *JobRecord) ID() id.ID { return r.id }

// Name returns the underlying job's name.
func (r *JobRecord) Name() string { return r.job.Name() }

// Schedule returns the record's schedule.
func (r *JobRecord) Schedule() schedule.Schedule { return r.schedule }

// IsEnabled reports whether the record will fire automatically.
func (r *JobRecord) IsEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// SetEnabled changes the record's enabled flag. Disabling suppresses
// future automatic fires without affecting an in-flight execution;
// re-enabling forces a full due recomputation.
func (r *JobRecord) SetEnabled(enabled bool) {
	r.mu.Lock()
	changed := r.enabled != enabled
	r.enabled = enabled
	r.mu.Unlock()

	if changed {
		r.recomputeDue(true)
	}
}

// IsExecuting reports whether the record currently has an in-flight
// execution.
func (r *JobRecord) IsExecuting() bool {
	return r.handle.Load() != nil
}

// Due returns the record's current due time, or ok=false if the record
// will not fire again (detached, disabled, or an exhausted schedule).
func (r *JobRecord) Due() (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.due, r.haveDue
}

func (r *JobRecord) engineRef() *Scheduler {
	r.engineMu.RLock()
	defer r.engineMu.RUnlock()
	return r.engine
}

func (r *JobRecord) detach() {
	r.engineMu.Lock()
	r.engine = nil
	r.engineMu.Unlock()

	r.mu.Lock()
	r.due, r.haveDue = time.Time{}, false
	r.mu.Unlock()
}

// recomputeDue reevaluates the record's due time against its schedule.
// If force is true (registration, enable/disable changes), the schedule's
// FromDue option is ignored and "last" is taken from the engine's clock
// rather than the previous due time. The post-execution recomputation is
// not forced, so FromDue anchors it to the previous due time.
func (r *JobRecord) recomputeDue(force bool) {
	eng := r.engineRef()

	r.mu.Lock()
	if eng == nil || !r.enabled || !eng.IsEnabled() {
		changed := r.haveDue
		r.due, r.haveDue = time.Time{}, false
		r.mu.Unlock()
		if changed && eng != nil {
			eng.notify()
		}
		return
	}

	opts := r.schedule.Options()
	var last time.Time
	if opts.Has(schedule.FromDue) && !force && r.haveDue {
		last = r.due
	} else {
		last = eng.Now()
	}
	r.mu.Unlock()

	next, ok := r.schedule.Next(eng, last)
	next, ok = schedule.ApplyOptions(next, ok, opts)

	r.mu.Lock()
	changed := ok != r.haveDue || (ok && !next.Equal(r.due))
	r.due, r.haveDue = next, ok
	r.mu.Unlock()

	if changed {
		eng.notify()
	}
}

// ExecuteAsync fires the record out of band, independent of its schedule.
// If the record is already executing, the returned Execution completes
// when the in-flight run completes or ctx is cancelled, whichever comes
// first; it does not cancel the in-flight run.
func (r *JobRecord) ExecuteAsync(ctx context.Context) *Execution {
	return r.execute(ctx, true)
}

// executeAsync fires the record from the tick loop. If the record is
// already executing, the in-flight Execution is returned unchanged.
func (r *JobRecord) executeAsync() *Execution {
	return r.execute(context.Background(), false)
}

func (r *JobRecord) execute(ctx context.Context, manual bool) *Execution {
	eng := r.engineRef()

	if !manual {
		if eng == nil || eng.isDisposed() || !r.IsEnabled() {
			return completedExecution()
		}
	} else if eng == nil || eng.isDisposed() || ctx.Err() != nil {
		return cancelledExecution()
	}

	newExec := newExecution()
	var owned bool
	var existing *Execution
	for {
		if r.handle.CompareAndSwap(nil, newExec) {
			owned = true
			break
		}
		existing = r.handle.Load()
		if existing != nil {
			break
		}
	}

	if !owned {
		if manual {
			return race(ctx, existing)
		}
		return existing
	}

	if manual {
		r.mu.Lock()
		r.manual = true
		r.due, r.haveDue = eng.Now(), true
		r.mu.Unlock()
		eng.notify()
	}

	execCtx, cancel := eng.executionContext(r.schedule.Options())
	jobID, jobName := r.id, r.job.Name()

	go func() {
		defer cancel()

		eng.extensionsRegistry().EmitJobFired(execCtx, jobID, jobName, manual)
		start := eng.Now()

		inv := middleware.Invocation{JobID: jobID, JobName: jobName, Manual: manual}
		state := &jobState{record: r, manual: manual}
		runErr := eng.middlewareChain()(execCtx, inv, func(c context.Context) error {
			return r.job.Run(c, state)
		})

		elapsed := eng.Now().Sub(start)
		r.finish(eng, newExec, runErr, elapsed)
		newExec.complete(runErr)
	}()

	return newExec
}

// finish runs the post-execution protocol: extension notification,
// auto-disable on unignored failure, clearing the manual flag and
// execution handle, and due recomputation.
func (r *JobRecord) finish(eng *Scheduler, exec *Execution, runErr error, elapsed time.Duration) {
	jobID, jobName := r.id, r.job.Name()
	ctx := context.Background()

	switch {
	case runErr == nil:
		eng.extensionsRegistry().EmitJobCompleted(ctx, jobID, jobName, elapsed)
	case errors.Is(runErr, context.Canceled), errors.Is(runErr, context.DeadlineExceeded):
		// Cancellation, whether from disposal or a maximum-execution-
		// duration timeout, is not a failure: no logging beyond what the
		// logging middleware already emitted, no auto-disable.
	default:
		eng.extensionsRegistry().EmitJobFailed(ctx, jobID, jobName, runErr)
		if !r.schedule.Options().Has(schedule.IgnoreErrors) {
			r.SetEnabled(false)
			eng.extensionsRegistry().EmitJobDisabled(ctx, jobID, jobName, "unignored execution failure")
		}
	}

	r.mu.Lock()
	r.manual = false
	r.mu.Unlock()

	r.handle.CompareAndSwap(exec, nil)

	r.recomputeDue(false)
}

// jobState is the JobState passed to a Job's Run method.
type jobState struct {
	record *JobRecord
	manual bool
}

func (s *jobState) ID() id.ID { return s.record.id }
func (s *jobState) Name() string { return s.record.job.Name() }

func (s *jobState) Engine() *Scheduler { return s.record.engineRef() }

func (s *jobState) Schedule() (schedule.Schedule, bool) {
	if s.manual {
		return nil, false
	}
	return s.record.schedule, true
}

func (s *jobState) Due() time.Time {
	due, _ := s.record.Due()
	return due
}

func (s *jobState) Logger() *slog.Logger {
	if eng := s.record.engineRef(); eng != nil {
		return eng.logger
	}
	return slog.Default()
}

func (s *jobState) IsManual() bool     { return s.manual }
func (s *jobState) IsExecuting() bool  { return s.record.IsExecuting() }
func (s *jobState) IsEnabled() bool    { return s.record.IsEnabled() }
func (s *jobState) SetEnabled(v bool)  { s.record.SetEnabled(v) }
