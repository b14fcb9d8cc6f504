package chrono

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	otelmetric "go.opentelemetry.io/otel/metric"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/brightloop/chrono/clock"
	"github.com/brightloop/chrono/ext"
	"github.com/brightloop/chrono/id"
	"github.com/brightloop/chrono/middleware"
	"github.com/brightloop/chrono/schedule"
)

// instrumentationName is the instrumentation scope name for the
// scheduler's own tracer and meter, and for the default middleware
// chain built by New.
const instrumentationName = "github.com/brightloop/chrono"

const (
	// minimumTimerWait is the smallest duration worth arming a timer for;
	// shorter waits are busy-spun instead, since timer resolution on most
	// platforms cannot reliably resolve sub-millisecond deadlines.
	minimumTimerWait = time.Millisecond
	// maximumTimerWait bounds a single timer arm; a schedule with a
	// distant next fire is re-armed in maximumTimerWait-sized increments
	// rather than handed directly to the OS timer in one shot.
	maximumTimerWait = 49 * 24 * time.Hour
)

// Scheduler drives a set of JobRecords, firing each at the times its
// Schedule computes. A Scheduler is safe for concurrent use; the zero
// value is not usable — construct one with New.
type Scheduler struct {
	recordsMu sync.RWMutex
	records   map[id.ID]*JobRecord

	clock           clock.Clock
	zoneProvider    ZoneProvider
	zone            *time.Location
	maxExecDuration time.Duration
	logger          *slog.Logger

	tracerProvider oteltrace.TracerProvider
	meterProvider  otelmetric.MeterProvider
	chain          middleware.Middleware
	extensions     *ext.Registry

	extraMiddleware   []middleware.Middleware
	pendingExtensions []ext.Extension

	enabled   atomic.Bool
	disposed  atomic.Bool
	disposeOnce sync.Once

	tickState atomic.Int64
	timerMu   sync.Mutex
	timer     *time.Timer

	nextDue atomic.Pointer[time.Time]

	masterCtx    context.Context
	masterCancel context.CancelFunc

	tickDuration otelmetric.Float64Histogram
	nextDueGauge otelmetric.Float64ObservableGauge
}

// New constructs a Scheduler. Without options, it uses the OS wall
// clock, the host's local zone, no maximum execution duration, the
// default slog logger, and the globally registered OTel providers.
func New(opts ...Option) (*Scheduler, error) {
	cfg := DefaultConfig()

	s := &Scheduler{
		records:         make(map[id.ID]*JobRecord),
		clock:           clock.NewStandard(),
		zoneProvider:    NewSystemZoneProvider(),
		zone:            cfg.Zone,
		maxExecDuration: cfg.MaximumExecutionDuration,
		logger:          slog.Default(),
		tracerProvider:  otel.GetTracerProvider(),
		meterProvider:   otel.GetMeterProvider(),
	}
	s.enabled.Store(true)
	s.masterCtx, s.masterCancel = context.WithCancel(context.Background())

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.extensions = ext.NewRegistry(s.logger)
	for _, e := range s.pendingExtensions {
		s.extensions.Register(e)
	}

	defaultChain := []middleware.Middleware{
		middleware.Recover(s.logger),
		middleware.TracingWithTracer(s.tracerProvider.Tracer(instrumentationName)),
		middleware.MetricsWithMeter(s.meterProvider.Meter(instrumentationName)),
		middleware.Logging(s.logger),
	}
	s.chain = middleware.Chain(append(defaultChain, s.extraMiddleware...)...)

	meter := s.meterProvider.Meter(instrumentationName)
	s.tickDuration, _ = meter.Float64Histogram(
		"chrono.scheduler.tick_duration",
		otelmetric.WithDescription("Duration of a single tick-loop sweep in seconds"),
		otelmetric.WithUnit("s"),
	)
	s.nextDueGauge, _ = meter.Float64ObservableGauge(
		"chrono.scheduler.next_due",
		otelmetric.WithDescription("Seconds until the next scheduled fire, or -1 if none is armed"),
		otelmetric.WithUnit("s"),
		otelmetric.WithFloat64Callback(func(_ context.Context, o otelmetric.Float64Observer) error {
			due, ok := s.NextDue()
			if !ok {
				o.Observe(-1)
				return nil
			}
			o.Observe(due.Sub(s.Now()).Seconds())
			return nil
		}),
	)

	return s, nil
}

// Now returns the scheduler's current time, satisfying schedule.Engine.
func (s *Scheduler) Now() time.Time { return s.clock.Now().In(s.zone) }

// Zone returns the scheduler's configured default zone, satisfying
// schedule.Engine.
func (s *Scheduler) Zone() *time.Location { return s.zone }

// Clock returns the scheduler's configured Clock.
func (s *Scheduler) Clock() clock.Clock { return s.clock }

// ZoneProvider returns the scheduler's configured ZoneProvider.
func (s *Scheduler) ZoneProvider() ZoneProvider { return s.zoneProvider }

// MaximumExecutionDuration returns the configured per-execution bound.
// Zero means no bound.
func (s *Scheduler) MaximumExecutionDuration() time.Duration { return s.maxExecDuration }

// IsEnabled reports whether the scheduler will fire records automatically.
func (s *Scheduler) IsEnabled() bool { return !s.disposed.Load() && s.enabled.Load() }

// SetEnabled enables or disables automatic firing across every record.
// Disabling does not cancel in-flight executions. Re-enabling forces a
// full re-evaluation of every record's due time.
func (s *Scheduler) SetEnabled(enabled bool) {
	if s.disposed.Load() {
		return
	}
	s.enabled.Store(enabled)
	for _, r := range s.snapshotRecords() {
		r.recomputeDue(true)
	}
	if enabled {
		s.notify()
	}
}

func (s *Scheduler) isDisposed() bool { return s.disposed.Load() }

// NextDue returns the earliest due time across all enabled records, as
// last computed by the tick loop.
func (s *Scheduler) NextDue() (time.Time, bool) {
	p := s.nextDue.Load()
	if p == nil {
		return time.Time{}, false
	}
	return *p, true
}

func (s *Scheduler) setNextDue(t time.Time, ok bool) {
	if !ok {
		s.nextDue.Store(nil)
		return
	}
	s.nextDue.Store(&t)
}

func (s *Scheduler) extensionsRegistry() *ext.Registry { return s.extensions }

func (s *Scheduler) middlewareChain() middleware.Middleware { return s.chain }

func (s *Scheduler) executionContext(opts schedule.Options) (context.Context, context.CancelFunc) {
	if opts.Has(schedule.LongRunning) || s.maxExecDuration <= 0 {
		return context.WithCancel(s.masterCtx)
	}
	return context.WithTimeout(s.masterCtx, s.maxExecDuration)
}

// Add registers job against sched and returns its JobRecord. The record
// begins enabled with its due time computed from the scheduler's current
// time. Add rejects a job pointer that is already registered with this
// scheduler, returning ErrAlreadyRegistered.
func (s *Scheduler) Add(job Job, sched schedule.Schedule) (*JobRecord, error) {
	if s.disposed.Load() {
		return nil, ErrDisposed
	}
	if job == nil {
		return nil, ErrNilJob
	}
	if job.Name() == "" {
		return nil, ErrEmptyJobName
	}
	if sched == nil {
		return nil, ErrInvalidSchedule
	}

	s.recordsMu.Lock()
	for _, existing := range s.records {
		if existing.job == job {
			s.recordsMu.Unlock()
			return nil, ErrAlreadyRegistered
		}
	}

	r := newJobRecord(s, job, sched)
	s.records[r.id] = r
	s.recordsMu.Unlock()

	r.recomputeDue(true)
	s.notify()

	return r, nil
}

// TryRemove unregisters r, detaching it from the job set. It returns
// ErrJobNotFound if r does not belong to s (already removed, or owned by
// a different Scheduler).
func (s *Scheduler) TryRemove(r *JobRecord) error {
	if r == nil {
		return ErrJobNotFound
	}

	s.recordsMu.Lock()
	existing, ok := s.records[r.id]
	if !ok || existing != r {
		s.recordsMu.Unlock()
		return ErrJobNotFound
	}
	delete(s.records, r.id)
	s.recordsMu.Unlock()

	r.detach()
	return nil
}

// Jobs returns a snapshot of every currently-registered JobRecord.
func (s *Scheduler) Jobs() []*JobRecord { return s.snapshotRecords() }

func (s *Scheduler) snapshotRecords() []*JobRecord {
	s.recordsMu.RLock()
	defer s.recordsMu.RUnlock()
	out := make([]*JobRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	return out
}

// Dispose permanently stops the scheduler: automatic firing ceases, the
// armed timer is cancelled, and the master context shared by every
// in-flight execution is cancelled. Dispose is idempotent and safe to
// call more than once.
func (s *Scheduler) Dispose() {
	s.disposeOnce.Do(func() {
		s.disposed.Store(true)
		s.enabled.Store(false)
		s.disarmTimer()
		s.masterCancel()
	})
}

// notify wakes the tick loop. If no sweep is currently running, this call
// starts one on a new goroutine; otherwise the running sweep observes the
// bump and re-evaluates before arming its timer.
func (s *Scheduler) notify() {
	for {
		old := s.tickState.Load()
		if old < 0 {
			return
		}
		if s.tickState.CompareAndSwap(old, old+1) {
			if old == 0 {
				go s.runLoop()
			}
			return
		}
	}
}

func (s *Scheduler) armTimer(d time.Duration) {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	s.timer = time.AfterFunc(d, s.notify)
}

func (s *Scheduler) disarmTimer() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// runLoop is the tick loop. Exactly one goroutine runs it at a time: the
// first notify() call to observe tick-state at zero becomes the owner and
// runs this, draining further bumps until it can hand tick-state back to
// zero with an armed timer (or return outright if disabled or disposed).
func (s *Scheduler) runLoop() {
	for {
		if s.disposed.Load() {
			s.tickState.Store(0)
			return
		}
		if !s.enabled.Load() {
			s.tickState.Store(0)
			return
		}

		s.disarmTimer()
		s.tickState.Store(1)

		sweepStart := s.clock.Now()
		var next time.Time
		var haveNext bool

		for {
			now := s.Now()
			for _, r := range s.snapshotRecords() {
				if r.IsExecuting() {
					continue
				}
				due, ok := r.Due()
				if !ok {
					continue
				}
				if !due.After(now) {
					r.executeAsync()
					continue
				}
				if !haveNext || due.Before(next) {
					next, haveNext = due, true
				}
			}

			if s.tickState.Load() <= 1 {
				break
			}
			runtime.Gosched()
			s.tickState.Store(1)
			next, haveNext = time.Time{}, false
		}

		if s.tickDuration != nil {
			s.tickDuration.Record(context.Background(), s.clock.Now().Sub(sweepStart).Seconds())
		}
		s.setNextDue(next, haveNext)

		var wait time.Duration
		if haveNext {
			wait = next.Sub(s.Now())
			for wait > 0 && wait <= minimumTimerWait {
				wait = next.Sub(s.Now())
			}
			if wait > maximumTimerWait {
				wait = maximumTimerWait
			}
		}

		if haveNext && wait <= 0 {
			continue
		}
		if haveNext {
			s.armTimer(wait)
		}

		if s.tickState.CompareAndSwap(1, 0) {
			return
		}
		s.disarmTimer()
		if s.tickState.Load() < 0 {
			return
		}
	}
}
