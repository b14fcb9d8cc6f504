package clock

import "time"

// SyncSource is an external, higher-precision-than-OS time source, such as
// an NTP-disciplined clock. It is an external collaborator: this package
// does not implement one, only consumes it.
type SyncSource interface {
	Now() (time.Time, error)
}

// synchronizedClock wraps a SyncSource and falls back transparently to the
// OS wall clock whenever the source errors, so callers never have to
// special-case an unavailable time source.
type synchronizedClock struct {
	source SyncSource
}

// NewSynchronized returns a Clock backed by source, falling back to
// Standard precision whenever source.Now returns an error.
func NewSynchronized(source SyncSource) Clock {
	return &synchronizedClock{source: source}
}

func (c *synchronizedClock) Now() time.Time {
	if t, err := c.source.Now(); err == nil {
		return t
	}
	return time.Now()
}

func (c *synchronizedClock) Precision() Precision {
	if _, err := c.source.Now(); err != nil {
		return Standard
	}
	return Synchronized
}
