package clock

import (
	"sync"
	"time"
)

// neverInstant is the maximum representable time.Time, used by Never.
var neverInstant = time.Unix(1<<63-62135596801, 999999999).UTC()

// Test is a Clock whose "now" is entirely controlled by the test. Each call
// to Now applies a pure function to the previously returned instant and
// retains the result, so repeated calls are deterministic and advance
// exactly as the test dictates.
//
// Test is safe for concurrent use; tests that drive several goroutines
// through a scheduler under a shared Test clock need this.
type Test struct {
	mu   sync.Mutex
	last time.Time
	step func(time.Time) time.Time
}

// NewTest creates a Test clock whose retained instant starts at start.
// Every call to Now, the first included, applies step to the retained
// instant, so the first reading is step(start).
func NewTest(start time.Time, step func(time.Time) time.Time) *Test {
	return &Test{last: start, step: step}
}

// Fixed returns a Test clock that always reports t.
func Fixed(t time.Time) *Test {
	return NewTest(t, func(time.Time) time.Time { return t })
}

// From returns a Test clock that starts at start and advances by d on
// every call to Now.
func From(start time.Time, d time.Duration) *Test {
	return NewTest(start, func(last time.Time) time.Time { return last.Add(d) })
}

// Never returns a Test clock that always reports the maximum representable
// instant, so that schedules depending on "eventually" never fire.
func Never() *Test {
	return Fixed(neverInstant)
}

// Now returns the next instant and retains it as the new "last."
func (c *Test) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = c.step(c.last)
	return c.last
}

// Precision reports Standard; virtual time has no real-world precision.
func (c *Test) Precision() Precision { return Standard }

// Set replaces the retained instant with t, without advancing via step;
// the next call to Now returns step(t) (t itself for a Fixed-style step).
// Useful for jumping virtual time directly (e.g. DST scenarios).
func (c *Test) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = t
}

// Advance moves the clock forward by d and returns the new instant,
// bypassing step. Useful in tests that want explicit control over the
// amount of virtual time elapsed between assertions.
func (c *Test) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = c.last.Add(d)
	return c.last
}

// Peek returns the retained instant (the last one returned by Now, or set
// by Set or Advance since) without advancing it.
func (c *Test) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
