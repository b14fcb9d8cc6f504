package chrono

import "errors"

var (
	// ErrDisposed is returned by operations on a Scheduler that has
	// already been disposed.
	ErrDisposed = errors.New("chrono: scheduler disposed")

	// ErrJobNotFound is returned when a JobRecord reference no longer
	// belongs to the scheduler it is presented to.
	ErrJobNotFound = errors.New("chrono: job not found")

	// ErrNilJob is returned by Add when the job argument is nil.
	ErrNilJob = errors.New("chrono: job is nil")

	// ErrEmptyJobName is returned when a job's Name() is empty.
	ErrEmptyJobName = errors.New("chrono: job name is empty")

	// ErrMismatchedOptions is returned by Aggregate construction when its
	// children do not all share the same options bitset.
	ErrMismatchedOptions = errors.New("chrono: aggregate children must share the same options")

	// ErrInvalidSchedule is returned when a cron expression fails to
	// parse at construction time.
	ErrInvalidSchedule = errors.New("chrono: invalid schedule")

	// ErrAlreadyRegistered is returned by Add when the same job pointer
	// has already been registered with this scheduler.
	ErrAlreadyRegistered = errors.New("chrono: job already registered")
)
