package ext

import (
	"context"
	"log/slog"
	"time"

	"github.com/brightloop/chrono/id"
)

// Named entry types pair a hook implementation with the extension name
// captured at registration time. This avoids type-asserting back to
// Extension inside the emit methods.
type jobFiredEntry struct {
	name string
	hook JobFired
}

type jobCompletedEntry struct {
	name string
	hook JobCompleted
}

type jobFailedEntry struct {
	name string
	hook JobFailed
}

type jobDisabledEntry struct {
	name string
	hook JobDisabled
}

// Registry holds registered extensions and dispatches lifecycle events to
// them. It type-caches extensions at registration time so emit calls
// iterate only over extensions that implement the relevant hook.
type Registry struct {
	extensions []Extension
	logger     *slog.Logger

	jobFired     []jobFiredEntry
	jobCompleted []jobCompletedEntry
	jobFailed    []jobFailedEntry
	jobDisabled  []jobDisabledEntry
}

// NewRegistry creates an extension registry with the given logger.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger}
}

// Register adds an extension and type-asserts it into all applicable
// hook caches. Extensions are notified in registration order.
func (r *Registry) Register(e Extension) {
	r.extensions = append(r.extensions, e)
	name := e.Name()

	if h, ok := e.(JobFired); ok {
		r.jobFired = append(r.jobFired, jobFiredEntry{name, h})
	}
	if h, ok := e.(JobCompleted); ok {
		r.jobCompleted = append(r.jobCompleted, jobCompletedEntry{name, h})
	}
	if h, ok := e.(JobFailed); ok {
		r.jobFailed = append(r.jobFailed, jobFailedEntry{name, h})
	}
	if h, ok := e.(JobDisabled); ok {
		r.jobDisabled = append(r.jobDisabled, jobDisabledEntry{name, h})
	}
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []Extension { return r.extensions }

// EmitJobFired notifies all extensions that implement JobFired.
func (r *Registry) EmitJobFired(ctx context.Context, jobID id.ID, jobName string, manual bool) {
	for _, e := range r.jobFired {
		if err := e.hook.OnJobFired(ctx, jobID, jobName, manual); err != nil {
			r.logHookError("OnJobFired", e.name, err)
		}
	}
}

// EmitJobCompleted notifies all extensions that implement JobCompleted.
func (r *Registry) EmitJobCompleted(ctx context.Context, jobID id.ID, jobName string, elapsed time.Duration) {
	for _, e := range r.jobCompleted {
		if err := e.hook.OnJobCompleted(ctx, jobID, jobName, elapsed); err != nil {
			r.logHookError("OnJobCompleted", e.name, err)
		}
	}
}

// EmitJobFailed notifies all extensions that implement JobFailed.
func (r *Registry) EmitJobFailed(ctx context.Context, jobID id.ID, jobName string, jobErr error) {
	for _, e := range r.jobFailed {
		if err := e.hook.OnJobFailed(ctx, jobID, jobName, jobErr); err != nil {
			r.logHookError("OnJobFailed", e.name, err)
		}
	}
}

// EmitJobDisabled notifies all extensions that implement JobDisabled.
func (r *Registry) EmitJobDisabled(ctx context.Context, jobID id.ID, jobName string, reason string) {
	for _, e := range r.jobDisabled {
		if err := e.hook.OnJobDisabled(ctx, jobID, jobName, reason); err != nil {
			r.logHookError("OnJobDisabled", e.name, err)
		}
	}
}

// logHookError logs a warning when a lifecycle hook returns an error.
// Errors from hooks are never propagated — they must not block the
// scheduler.
func (r *Registry) logHookError(hook, extName string, err error) {
	r.logger.Warn("extension hook error",
		slog.String("hook", hook),
		slog.String("extension", extName),
		slog.String("error", err.Error()),
	)
}
