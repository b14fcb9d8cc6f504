package schedule

import "time"

// oneOff fires exactly once, at a fixed instant.
type oneOff struct {
	at   time.Time
	opts Options
}

// OneOff returns a Schedule that fires once at t and never again.
func OneOff(t time.Time, opts ...Option) Schedule {
	return &oneOff{at: t, opts: Merge(opts)}
}

func (s *oneOff) Name() string     { return "one-off" }
func (s *oneOff) Options() Options { return s.opts }

func (s *oneOff) Next(_ Engine, last time.Time) (time.Time, bool) {
	if s.at.After(last) {
		return s.at, true
	}
	return time.Time{}, false
}
