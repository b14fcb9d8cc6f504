package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Recover returns middleware that recovers from panics in the handler
// chain. Panics are converted to errors and logged with a stack trace, so
// they flow into the same failure path as an ordinary error return.
func Recover(logger *slog.Logger) Middleware {
	return func(ctx context.Context, inv Invocation, next Handler) (retErr error) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error("job handler panicked",
					slog.String("job_name", inv.JobName),
					slog.String("job_id", inv.JobID.String()),
					slog.Any("panic", r),
					slog.String("stack", stack),
				)
				retErr = fmt.Errorf("panic in job %s: %v", inv.JobName, r)
			}
		}()
		return next(ctx)
	}
}
