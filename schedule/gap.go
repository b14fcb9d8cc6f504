package schedule

import "time"

// gap fires repeatedly at a fixed interval after the last fire.
type gap struct {
	interval time.Duration
	opts     Options
}

// Gap returns a Schedule that fires every d after last, forever. A
// negative d is clamped to zero (fire immediately, every time).
func Gap(d time.Duration, opts ...Option) Schedule {
	if d < 0 {
		d = 0
	}
	return &gap{interval: d, opts: Merge(opts)}
}

func (s *gap) Name() string     { return "gap" }
func (s *gap) Options() Options { return s.opts }

func (s *gap) Next(_ Engine, last time.Time) (time.Time, bool) {
	return last.Add(s.interval), true
}
