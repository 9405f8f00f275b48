package tui

import (
	"io"
	"log/slog"
)

// OutputFormat controls how the submitted form is written to the output.
type OutputFormat string

const (
	// OutputFormatJSON writes the submitted values as a JSON object.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText writes one "Label: value" line per field.
	OutputFormatPrettyText OutputFormat = "pretty"
	// OutputFormatNone writes nothing.
	OutputFormatNone OutputFormat = "none"
)

// Theme captures optional prefixes applied to printed messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputFormat selects the format of the submitted summary.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *Session) {
		if format != "" {
			s.outputFormat = format
		}
	}
}

// WithOutput sets where the submitted summary is written.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
