package schedule

import "time"

// functional delegates entirely to a user-supplied function.
type functional struct {
	fn   func(last time.Time) (time.Time, bool)
	opts Options
}

// Functional returns a Schedule that calls fn(last) for every query,
// allowing arbitrary user computation of the next fire time.
func Functional(fn func(last time.Time) (time.Time, bool), opts ...Option) Schedule {
	return &functional{fn: fn, opts: Merge(opts)}
}

func (s *functional) Name() string     { return "functional" }
func (s *functional) Options() Options { return s.opts }

func (s *functional) Next(_ Engine, last time.Time) (time.Time, bool) {
	return s.fn(last)
}
