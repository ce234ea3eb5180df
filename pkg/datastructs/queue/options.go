package queue

import "go.uber.org/zap"

// Option configures a Bounded queue.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for lifecycle events (creation and close).
// Rejected pushes and empty pops are reported to the caller, never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
