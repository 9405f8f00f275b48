package stepform

import "log/slog"

// Option configures a Controller.
type Option func(*Controller)

// WithStore sets the snapshot store. Without it nothing is persisted.
func WithStore(store Store) Option {
	return func(c *Controller) {
		if store != nil {
			c.store = store
		}
	}
}

// WithSubmitter sets the receiver of completed forms.
func WithSubmitter(submitter Submitter) Option {
	return func(c *Controller) {
		if submitter != nil {
			c.submitter = submitter
		}
	}
}

// WithLogger sets the logger used for persistence and submission events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
