// Package middleware provides composable middleware for job execution.
// Middleware wraps handler calls synchronously and can modify execution
// (recover from panics, log, add tracing or metrics, etc.).
package middleware

import (
	"context"

	"github.com/brightloop/chrono/id"
)

// Invocation describes the job being executed, without exposing the
// engine's internal JobRecord type to middleware. This keeps the
// middleware package free of any dependency on the root package, so the
// root package can depend on middleware without creating an import cycle.
type Invocation struct {
	JobID   id.ID
	JobName string
	Manual  bool
}

// Handler is the terminal function that executes job logic.
type Handler func(ctx context.Context) error

// Middleware wraps a Handler with cross-cutting logic. It receives the
// current context, the invocation being executed, and the next handler to
// call. Middleware MUST call next to continue the chain unless
// intentionally short-circuiting.
type Middleware func(ctx context.Context, inv Invocation, next Handler) error

// Chain composes multiple middleware into a single Middleware. Middleware
// are applied right-to-left: the first middleware in the list is the
// outermost wrapper.
//
// Example: Chain(recover, tracing, metrics, logging) executes as:
//
//	recover → tracing → metrics → logging → handler
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, inv Invocation, next Handler) error {
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, inv, prev)
			}
		}
		return h(ctx)
	}
}
