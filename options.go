package chrono

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/brightloop/chrono/clock"
	"github.com/brightloop/chrono/ext"
	"github.com/brightloop/chrono/middleware"
)

// Option configures a Scheduler at construction time.
type Option func(*Scheduler) error

// WithClock overrides the scheduler's time source. Tests typically pass
// a clock.Test here.
func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) error {
		s.clock = c
		return nil
	}
}

// WithZoneProvider overrides how the scheduler resolves IANA zone names.
func WithZoneProvider(p ZoneProvider) Option {
	return func(s *Scheduler) error {
		s.zoneProvider = p
		return nil
	}
}

// WithZone sets the scheduler's default zone, used to anchor naive
// schedule computations and as the zone new records' "last" argument is
// expressed in.
func WithZone(loc *time.Location) Option {
	return func(s *Scheduler) error {
		if loc != nil {
			s.zone = loc
		}
		return nil
	}
}

// WithMaximumExecutionDuration bounds how long any non-LongRunning
// execution may run before its context is cancelled.
func WithMaximumExecutionDuration(d time.Duration) Option {
	return func(s *Scheduler) error {
		s.maxExecDuration = d
		return nil
	}
}

// WithLogger overrides the scheduler's structured logger. It is used by
// the default middleware chain and the extension registry.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithMiddleware appends custom middleware to the end of the default
// chain (recover, tracing, metrics, logging).
func WithMiddleware(mw ...middleware.Middleware) Option {
	return func(s *Scheduler) error {
		s.extraMiddleware = append(s.extraMiddleware, mw...)
		return nil
	}
}

// WithExtension registers a lifecycle hook extension.
func WithExtension(e ext.Extension) Option {
	return func(s *Scheduler) error {
		s.pendingExtensions = append(s.pendingExtensions, e)
		return nil
	}
}

// WithTracerProvider overrides the OTel TracerProvider used to build the
// default tracing middleware. Without this option, the globally
// registered provider is used.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Scheduler) error {
		if tp != nil {
			s.tracerProvider = tp
		}
		return nil
	}
}

// WithMeterProvider overrides the OTel MeterProvider used to build the
// default metrics middleware and the scheduler's own tick-loop
// instruments. Without this option, the globally registered provider is
// used.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Scheduler) error {
		if mp != nil {
			s.meterProvider = mp
		}
		return nil
	}
}
