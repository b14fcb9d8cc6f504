// Package observability provides an OpenTelemetry-backed lifecycle hook
// extension for the scheduler, recording scheduler-wide counters for
// fire/failure/disable events.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/brightloop/chrono/ext"
	"github.com/brightloop/chrono/id"
)

// meterName is the instrumentation scope name for scheduler-level metrics.
const meterName = "github.com/brightloop/chrono/observability"

// Compile-time interface checks.
var (
	_ ext.Extension   = (*MetricsExtension)(nil)
	_ ext.JobFired    = (*MetricsExtension)(nil)
	_ ext.JobFailed   = (*MetricsExtension)(nil)
	_ ext.JobDisabled = (*MetricsExtension)(nil)
)

// MetricsExtension records scheduler-wide lifecycle metrics via the
// global OTel MeterProvider. Register it with WithExtension to
// automatically track fire/failure/disable rates per job name.
//
// Instruments:
//   - chrono.scheduler.jobs_fired (Int64Counter, tags: job_name, manual)
//   - chrono.scheduler.jobs_failed (Int64Counter, tag: job_name)
//   - chrono.scheduler.jobs_disabled (Int64Counter, tags: job_name, reason)
type MetricsExtension struct {
	jobsFired    metric.Int64Counter
	jobsFailed   metric.Int64Counter
	jobsDisabled metric.Int64Counter
}

// NewMetricsExtension creates a MetricsExtension using the global
// MeterProvider. If none has been configured, OTel's no-op provider
// makes every recording a zero-cost pass-through.
func NewMetricsExtension() *MetricsExtension {
	return NewMetricsExtensionWithMeter(otel.Meter(meterName))
}

// NewMetricsExtensionWithMeter creates a MetricsExtension using the
// provided meter. This variant allows injecting a specific MeterProvider
// for testing.
func NewMetricsExtensionWithMeter(meter metric.Meter) *MetricsExtension {
	jobsFired, err := meter.Int64Counter(
		"chrono.scheduler.jobs_fired",
		metric.WithDescription("Total number of job fires"),
		metric.WithUnit("{fire}"),
	)
	_ = err // noop fallback guaranteed by OTel API contract

	jobsFailed, err := meter.Int64Counter(
		"chrono.scheduler.jobs_failed",
		metric.WithDescription("Total number of job failures"),
		metric.WithUnit("{failure}"),
	)
	_ = err

	jobsDisabled, err := meter.Int64Counter(
		"chrono.scheduler.jobs_disabled",
		metric.WithDescription("Total number of job disable transitions"),
		metric.WithUnit("{disable}"),
	)
	_ = err

	return &MetricsExtension{
		jobsFired:    jobsFired,
		jobsFailed:   jobsFailed,
		jobsDisabled: jobsDisabled,
	}
}

// Name implements ext.Extension.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnJobFired implements ext.JobFired.
func (m *MetricsExtension) OnJobFired(ctx context.Context, _ id.ID, jobName string, manual bool) error {
	m.jobsFired.Add(ctx, 1, metric.WithAttributes(
		attribute.String("job_name", jobName),
		attribute.Bool("manual", manual),
	))
	return nil
}

// OnJobFailed implements ext.JobFailed.
func (m *MetricsExtension) OnJobFailed(ctx context.Context, _ id.ID, jobName string, _ error) error {
	m.jobsFailed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("job_name", jobName),
	))
	return nil
}

// OnJobDisabled implements ext.JobDisabled.
func (m *MetricsExtension) OnJobDisabled(ctx context.Context, _ id.ID, jobName string, reason string) error {
	m.jobsDisabled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("job_name", jobName),
		attribute.String("reason", reason),
	))
	return nil
}
