// Package chrono provides an in-process job scheduler: a long-lived
// component that drives user-supplied jobs to execute at times determined
// by pluggable schedule objects.
//
// Jobs are opaque executable units; schedules are pure "next fire time"
// functions; the Scheduler mediates between them, honouring
// timezone-correct arithmetic, cooperative cancellation, manual override
// of fire times, single-flight execution per job, and dynamic
// enable/disable of the scheduler and of individual jobs.
//
// Chrono is designed as a library, not a service. Import it, register
// jobs against schedules, and let the scheduler drive them.
//
// # Quick Start
//
//	s, err := chrono.New(chrono.WithMaximumExecutionDuration(30 * time.Second))
//	if err != nil {
//	    return err
//	}
//	defer s.Dispose()
//
//	s.Add(chrono.FuncJob("send-report", func(ctx context.Context, _ chrono.JobState) error {
//	    return sendReport(ctx)
//	}), chrono.MustCron("0 0 * * * *"))
//
// # Architecture
//
// The scheduler owns a set of JobRecords, each pairing a Job with a
// Schedule. A single timer is armed at the nearest due time across all
// enabled, non-executing records; an atomic tick-state counter protects
// the re-evaluation loop from concurrent re-entry without heavyweight
// locking. Every fire runs through a configurable middleware chain
// (recover, tracing, metrics, logging) and notifies a lifecycle hook
// registry, independent of one another.
package chrono
