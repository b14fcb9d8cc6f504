package schedule

import (
	"errors"
	"time"
)

// ErrMismatchedOptions is returned by Aggregate when its children do not
// all share the same options bitset.
var ErrMismatchedOptions = errors.New("schedule: aggregate children must share the same options")

// aggregate fires at the earliest of its children's next fire times, or
// forces an immediate re-fire if any child is already due.
type aggregate struct {
	children []Schedule
	opts     Options
}

// Aggregate returns a Schedule that fires whenever the earliest of its
// children would fire. All children must share the same options bitset;
// Aggregate returns an error otherwise (construction-time failure, per
// the error handling design — aggregate mis-configuration never reaches
// the engine).
func Aggregate(children ...Schedule) (Schedule, error) {
	if len(children) == 0 {
		return &aggregate{}, nil
	}

	opts := children[0].Options()
	for _, c := range children[1:] {
		if c.Options() != opts {
			return nil, ErrMismatchedOptions
		}
	}

	return &aggregate{children: children, opts: opts}, nil
}

func (s *aggregate) Name() string     { return "aggregate" }
func (s *aggregate) Options() Options { return s.opts }

func (s *aggregate) Next(e Engine, last time.Time) (time.Time, bool) {
	earliest := time.Time{}
	haveEarliest := false

	for _, c := range s.children {
		next, ok := c.Next(e, last)
		if !ok {
			continue
		}
		if !next.After(last) {
			// A child is already due; force an immediate re-fire.
			return last, true
		}
		if !haveEarliest || next.Before(earliest) {
			earliest = next
			haveEarliest = true
		}
	}

	return earliest, haveEarliest
}
