package observability_test

import (
	"context"
	"errors"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/brightloop/chrono/id"
	"github.com/brightloop/chrono/observability"
)

func TestMetricsExtension_RecordsAllThreeCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	ext := observability.NewMetricsExtensionWithMeter(mp.Meter("test"))

	jobID := id.New()
	ctx := context.Background()
	if err := ext.OnJobFired(ctx, jobID, "job-a", true); err != nil {
		t.Fatalf("OnJobFired: %v", err)
	}
	if err := ext.OnJobFailed(ctx, jobID, "job-a", errors.New("boom")); err != nil {
		t.Fatalf("OnJobFailed: %v", err)
	}
	if err := ext.OnJobDisabled(ctx, jobID, "job-a", "unignored failure"); err != nil {
		t.Fatalf("OnJobDisabled: %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := map[string]int64{
		"chrono.scheduler.jobs_fired":    1,
		"chrono.scheduler.jobs_failed":   1,
		"chrono.scheduler.jobs_disabled": 1,
	}
	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && len(sum.DataPoints) > 0 {
				got[m.Name] = sum.DataPoints[0].Value
			}
		}
	}

	for name, w := range want {
		if got[name] != w {
			t.Errorf("%s = %d, want %d", name, got[name], w)
		}
	}
}

func TestMetricsExtension_DefaultNoopSafe(t *testing.T) {
	ext := observability.NewMetricsExtension()
	if err := ext.OnJobFired(context.Background(), id.New(), "job-a", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMetricsExtension_Name(t *testing.T) {
	ext := observability.NewMetricsExtension()
	if got := ext.Name(); got != "observability-metrics" {
		t.Errorf("Name() = %q, want %q", got, "observability-metrics")
	}
}
