package schedule

import (
	"sync"
	"time"
)

// limit wraps an inner Schedule and caps the number of distinct fire
// times it can produce across its lifetime.
type limit struct {
	mu        sync.Mutex
	remaining int
	inner     Schedule

	haveCache bool
	cacheIn   time.Time
	cacheOut  time.Time
	cacheOk   bool
}

// Limit returns a Schedule that delegates to inner but stops producing
// fire times once n distinct instants have been returned. Repeated
// queries with the same last argument are free: they replay the cached
// answer without consuming budget, so the engine's idempotence
// requirement (same input, same output, no side effect) holds even though
// Limit is stateful.
func Limit(n int, inner Schedule) Schedule {
	return &limit{remaining: n, inner: inner}
}

func (s *limit) Name() string     { return "limit(" + s.inner.Name() + ")" }
func (s *limit) Options() Options { return s.inner.Options() }

func (s *limit) Next(e Engine, last time.Time) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.haveCache && s.cacheIn.Equal(last) {
		return s.cacheOut, s.cacheOk
	}

	if s.remaining <= 0 {
		s.haveCache = true
		s.cacheIn = last
		s.cacheOut, s.cacheOk = time.Time{}, false
		return s.cacheOut, s.cacheOk
	}

	next, ok := s.inner.Next(e, last)

	if !s.haveCache || !sameFire(next, ok, s.cacheOut, s.cacheOk) {
		s.remaining--
	}

	s.haveCache = true
	s.cacheIn = last
	s.cacheOut, s.cacheOk = next, ok

	return next, ok
}

func sameFire(a time.Time, aOk bool, b time.Time, bOk bool) bool {
	if aOk != bOk {
		return false
	}
	if !aOk {
		return true
	}
	return a.Equal(b)
}
