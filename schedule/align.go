package schedule

import "time"

// ApplyOptions rounds ts up to the boundary implied by the
// highest-precedence Align flag set in opts (Days > Hours > Minutes >
// Seconds), or returns ts unchanged if no Align flag is set. Rounding is
// defined on the instant axis and the result is re-anchored to ts's zone;
// it is idempotent and never moves ts backward.
func ApplyOptions(ts time.Time, ok bool, opts Options) (time.Time, bool) {
	if !ok || ts.IsZero() {
		return ts, ok
	}

	var boundary time.Duration
	switch {
	case opts.Has(AlignDays):
		boundary = 24 * time.Hour
	case opts.Has(AlignHours):
		boundary = time.Hour
	case opts.Has(AlignMinutes):
		boundary = time.Minute
	case opts.Has(AlignSeconds):
		boundary = time.Second
	default:
		return ts, ok
	}

	loc := ts.Location()
	return ceilTo(ts, boundary).In(loc), ok
}

// ceilTo rounds t up to the nearest multiple of d since the Unix epoch.
func ceilTo(t time.Time, d time.Duration) time.Time {
	unixNanos := t.UnixNano()
	step := d.Nanoseconds()
	if unixNanos%step == 0 {
		return t
	}
	// Integer division truncates toward zero, which is already the ceiling
	// for negative (pre-epoch) values.
	q := unixNanos / step
	if unixNanos > 0 {
		q++
	}
	rounded := q * step
	return time.Unix(0, rounded).In(t.Location())
}
