package stepform

import (
	"context"
	"log/slog"
)

// Submitter receives the completed form once the review step is submitted.
type Submitter interface {
	Submit(ctx context.Context, data FormData) error
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, data FormData) error

// Submit calls fn.
func (fn SubmitterFunc) Submit(ctx context.Context, data FormData) error {
	return fn(ctx, data)
}

// LogSubmitter records submissions in the log. It is the default Submitter.
type LogSubmitter struct {
	Logger *slog.Logger
}

// Submit logs every field of data at info level.
func (s LogSubmitter) Submit(ctx context.Context, data FormData) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := make([]any, 0, len(allFields))
	for _, field := range allFields {
		attrs = append(attrs, slog.String(string(field), data.Get(field)))
	}
	logger.InfoContext(ctx, "Form submitted successfully", slog.Group("form", attrs...))
	return nil
}
