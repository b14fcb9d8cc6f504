// Package schedule provides the pure "next fire time" combinators consumed
// by the scheduler engine. Every Schedule is a reusable, idempotent
// function from a "last" instant to a "next" instant or none; schedules
// carry no execution logic of their own.
package schedule

import "time"

// Engine is the minimal capability a Schedule needs from its host: the
// current zoned time and the zone to anchor naive computations in. It is
// deliberately small and defined here, not in the root package, so that
// schedule does not import the root package — the root package imports
// schedule instead, avoiding an import cycle.
type Engine interface {
	// Now returns the engine's current zoned time.
	Now() time.Time
	// Zone returns the engine's configured default zone.
	Zone() *time.Location
}

// Options is a bitset of independent schedule behaviours.
type Options uint8

const (
	// IgnoreErrors means a job failure does not auto-disable the record.
	IgnoreErrors Options = 1 << iota
	// FromDue asks the schedule for next relative to the previous due
	// time rather than the previous completion time.
	FromDue
	// AlignSeconds rounds the computed due time up to the next second.
	AlignSeconds
	// AlignMinutes rounds the computed due time up to the next minute.
	AlignMinutes
	// AlignHours rounds the computed due time up to the next hour.
	AlignHours
	// AlignDays rounds the computed due time up to the next day.
	AlignDays
	// LongRunning exempts the job from the scheduler-wide maximum
	// execution duration.
	LongRunning
)

// Has reports whether flag is set in o.
func (o Options) Has(flag Options) bool { return o&flag != 0 }

// Option configures an Options bitset. Schedule constructors take
// ...Option rather than a raw Options so that the public surface can
// expose named functions (IgnoreErrors, FromDue, AlignToSeconds, ...)
// without callers needing to know about bit positions.
type Option func(*Options)

// Merge folds a slice of Option into a single Options value.
func Merge(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Schedule is a pure, reusable function from "last" to "next fire or
// none." Implementations may be stateful (Limit, Aggregate) but must
// answer repeated queries with the same last argument identically.
type Schedule interface {
	// Name identifies the schedule for logging.
	Name() string
	// Options returns this schedule's behaviour bitset.
	Options() Options
	// Next returns the next instant at which this schedule fires, or
	// ok=false if it will never fire again. The result is normally after
	// last; it can equal last (a zero-interval Gap, or an Aggregate whose
	// child is already due), which means "fire again now".
	Next(e Engine, last time.Time) (next time.Time, ok bool)
}
