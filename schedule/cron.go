package schedule

import (
	"time"

	cronlib "github.com/robfig/cron/v3"
)

// cronParser supports standard 5-field cron, the same with an optional
// leading seconds field (6 fields), and descriptors like "@every 30s",
// "@daily".
var cronParser = cronlib.NewParser(
	cronlib.SecondOptional | cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow | cronlib.Descriptor,
)

// ParseCron parses a cron expression into the external cron engine's
// Schedule contract: Next(time.Time) time.Time. This is the only point of
// contact with the cron parser; DST correctness is entirely delegated to
// it.
func ParseCron(expr string) (cronlib.Schedule, error) {
	return cronParser.Parse(expr)
}

// cron delegates next-occurrence computation to a parsed cron
// expression, re-anchoring the result to last's zone.
type cron struct {
	expr  string
	inner cronlib.Schedule
	opts  Options
}

// Cron returns a Schedule that fires at the next occurrence of expr
// strictly after last, in last's zone. expr must already have been
// parsed via ParseCron; construction-time parse failures are the
// caller's responsibility, surfaced synchronously at the construction
// site.
func Cron(expr string, parsed cronlib.Schedule, opts ...Option) Schedule {
	return &cron{expr: expr, inner: parsed, opts: Merge(opts)}
}

func (s *cron) Name() string     { return "cron(" + s.expr + ")" }
func (s *cron) Options() Options { return s.opts }

func (s *cron) Next(_ Engine, last time.Time) (time.Time, bool) {
	inZone := last
	next := s.inner.Next(inZone)
	if next.IsZero() {
		return time.Time{}, false
	}
	return next.In(last.Location()), true
}
