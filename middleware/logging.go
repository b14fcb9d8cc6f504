package middleware

import (
	"context"
	"log/slog"
	"time"
)

// Logging returns middleware that logs job start and completion.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, inv Invocation, next Handler) error {
		logger.Info("job started",
			slog.String("job_name", inv.JobName),
			slog.String("job_id", inv.JobID.String()),
			slog.Bool("manual", inv.Manual),
		)

		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("job failed",
				slog.String("job_name", inv.JobName),
				slog.String("job_id", inv.JobID.String()),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("job completed",
				slog.String("job_name", inv.JobName),
				slog.String("job_id", inv.JobID.String()),
				slog.Duration("elapsed", elapsed),
			)
		}

		return err
	}
}
