package chrono

import "time"

// Config holds configuration for the Scheduler.
type Config struct {
	// MaximumExecutionDuration bounds how long a non-LongRunning job
	// execution may run before its context is cancelled. Zero means no
	// bound.
	MaximumExecutionDuration time.Duration

	// Zone is the default zone used to seed newly-registered records'
	// "last" argument, and to anchor naive schedule outputs.
	Zone *time.Location
}

// DefaultConfig returns a Config with sensible defaults: no maximum
// execution duration, and the host's local zone.
func DefaultConfig() Config {
	return Config{
		MaximumExecutionDuration: 0,
		Zone:                     time.Local,
	}
}
