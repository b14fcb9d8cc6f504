package chrono

import (
	"time"

	"github.com/brightloop/chrono/schedule"
)

// Once returns a Schedule that fires exactly once, at t.
func Once(t time.Time, opts ...ScheduleOption) schedule.Schedule {
	return schedule.OneOff(t, toScheduleOpts(opts)...)
}

// Every returns a Schedule that fires repeatedly every d.
func Every(d time.Duration, opts ...ScheduleOption) schedule.Schedule {
	return schedule.Gap(d, toScheduleOpts(opts)...)
}

// Func returns a Schedule that calls fn(last) to compute each next fire
// time, for arbitrary user-defined recurrence logic.
func Func(fn func(last time.Time) (time.Time, bool), opts ...ScheduleOption) schedule.Schedule {
	return schedule.Functional(fn, toScheduleOpts(opts)...)
}

// Cron parses expr as a standard five-field cron expression, optionally
// preceded by a seconds field (plus descriptors like "@daily" and
// "@every 30s"), and returns a Schedule that fires at each of its
// occurrences.
func Cron(expr string, opts ...ScheduleOption) (schedule.Schedule, error) {
	parsed, err := schedule.ParseCron(expr)
	if err != nil {
		return nil, &ScheduleError{Expr: expr, Err: err}
	}
	return schedule.Cron(expr, parsed, toScheduleOpts(opts)...), nil
}

// MustCron is like Cron but panics if expr fails to parse. It is meant
// for schedules known at compile time, e.g. package-level variables.
func MustCron(expr string, opts ...ScheduleOption) schedule.Schedule {
	s, err := Cron(expr, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Limit wraps inner so that it stops firing after n distinct instants.
func Limit(n int, inner schedule.Schedule) schedule.Schedule {
	return schedule.Limit(n, inner)
}

// Aggregate returns a Schedule that fires whenever the earliest of
// children would fire. All children must share the same set of
// ScheduleOptions.
func Aggregate(children ...schedule.Schedule) (schedule.Schedule, error) {
	s, err := schedule.Aggregate(children...)
	if err != nil {
		return nil, ErrMismatchedOptions
	}
	return s, nil
}

// ScheduleError reports that a cron expression failed to parse.
type ScheduleError struct {
	Expr string
	Err  error
}

func (e *ScheduleError) Error() string {
	return "chrono: invalid cron expression " + e.Expr + ": " + e.Err.Error()
}

func (e *ScheduleError) Unwrap() error { return ErrInvalidSchedule }

// ScheduleOption configures a Schedule's behaviour bitset. Use the named
// constructors below rather than constructing one directly.
type ScheduleOption schedule.Option

func toScheduleOpts(opts []ScheduleOption) []schedule.Option {
	out := make([]schedule.Option, len(opts))
	for i, o := range opts {
		out[i] = schedule.Option(o)
	}
	return out
}

// IgnoreErrors prevents a job failure from auto-disabling its record.
func IgnoreErrors() ScheduleOption {
	return func(o *schedule.Options) { *o |= schedule.IgnoreErrors }
}

// FromDue asks the schedule for its next fire time relative to the
// previous due time, rather than the previous completion time.
func FromDue() ScheduleOption {
	return func(o *schedule.Options) { *o |= schedule.FromDue }
}

// AlignToSeconds rounds the computed due time up to the next second
// boundary.
func AlignToSeconds() ScheduleOption {
	return func(o *schedule.Options) { *o |= schedule.AlignSeconds }
}

// AlignToMinutes rounds the computed due time up to the next minute
// boundary.
func AlignToMinutes() ScheduleOption {
	return func(o *schedule.Options) { *o |= schedule.AlignMinutes }
}

// AlignToHours rounds the computed due time up to the next hour
// boundary.
func AlignToHours() ScheduleOption {
	return func(o *schedule.Options) { *o |= schedule.AlignHours }
}

// AlignToDays rounds the computed due time up to the next day boundary,
// counted in whole 24-hour days since the Unix epoch (UTC midnight), not
// midnight in the engine's configured zone.
func AlignToDays() ScheduleOption {
	return func(o *schedule.Options) { *o |= schedule.AlignDays }
}

// LongRunning exempts a job from the scheduler's maximum execution
// duration.
func LongRunning() ScheduleOption {
	return func(o *schedule.Options) { *o |= schedule.LongRunning }
}
