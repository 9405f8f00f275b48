package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-stepform/pkg/stepform"
)

const (
	actionNext     = "Next"
	actionPrevious = "Previous"
	actionSubmit   = "Submit"
)

// Session drives a stepform.Controller from the terminal until one form is
// submitted.
type Session struct {
	ctrl         *stepform.Controller
	driver       PromptDriver
	outputFormat OutputFormat
	out          io.Writer
	theme        Theme
	logger       *slog.Logger
}

// New constructs a session with the survey driver and pretty output.
func New(ctrl *stepform.Controller, options ...Option) (*Session, error) {
	if ctrl == nil {
		return nil, ErrNoController
	}
	s := &Session{
		ctrl:         ctrl,
		outputFormat: OutputFormatPrettyText,
		out:          os.Stdout,
		logger:       slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s, nil
}

// Run prompts step by step and returns the submitted values. Input typed
// before an abort stays persisted in the controller's store.
func (s *Session) Run(ctx context.Context) (stepform.FormData, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		step := s.ctrl.Step()
		if err := s.info(ctx, fmt.Sprintf("Step %d of %d: %s", step, len(stepform.Steps()), step.Title())); err != nil {
			return nil, err
		}

		if step.Terminal() {
			data, done, err := s.review(ctx)
			if err != nil || done {
				return data, err
			}
			continue
		}

		if err := s.editStep(ctx, step); err != nil {
			return nil, err
		}
		if err := s.navigate(ctx, step); err != nil {
			return nil, err
		}
	}
}

func (s *Session) editStep(ctx context.Context, step stepform.Step) error {
	errs := s.ctrl.Errors()
	data := s.ctrl.Data()

	for _, field := range step.Fields() {
		if msg, ok := errs[field]; ok {
			if err := s.errorf(ctx, "%s: %s", field.Label(), msg); err != nil {
				return err
			}
		}
	}

	for _, field := range step.Fields() {
		help := ""
		if field.Optional() {
			help = "Optional"
		}
		value, err := s.driver.Input(ctx, InputConfig{
			Message: field.Label() + ":",
			Default: data.Get(field),
			Help:    help,
		})
		if err != nil {
			return err
		}
		if err := s.ctrl.UpdateField(ctx, field, value); err != nil {
			if infoErr := s.errorf(ctx, "could not save progress: %v", err); infoErr != nil {
				return infoErr
			}
		}
	}
	return nil
}

func (s *Session) navigate(ctx context.Context, step stepform.Step) error {
	if step == stepform.StepContact {
		s.ctrl.GoNext()
		return nil
	}

	options := []string{actionNext, actionPrevious}
	action, err := s.choose(ctx, options)
	if err != nil {
		return err
	}
	switch action {
	case actionNext:
		s.ctrl.GoNext()
	case actionPrevious:
		s.ctrl.GoPrevious()
	}
	return nil
}

// review shows the summary and handles the terminal step. done is true once
// the form has been submitted.
func (s *Session) review(ctx context.Context) (stepform.FormData, bool, error) {
	data := s.ctrl.Data()
	if err := s.info(ctx, prettySummary(data)); err != nil {
		return nil, false, err
	}

	action, err := s.choose(ctx, []string{actionSubmit, actionPrevious})
	if err != nil {
		return nil, false, err
	}
	if action == actionPrevious {
		s.ctrl.GoPrevious()
		return nil, false, nil
	}

	ok, err := s.ctrl.Submit(ctx)
	if !ok {
		if err != nil {
			return nil, false, s.errorf(ctx, "submission failed: %v", err)
		}
		return nil, false, nil
	}
	if err != nil {
		s.logger.WarnContext(ctx, "tui: submitted but snapshot was not cleared", slog.Any("error", err))
	}
	if err := s.info(ctx, "Form submitted successfully!"); err != nil {
		return nil, false, err
	}
	if err := s.writeSummary(data); err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *Session) choose(ctx context.Context, options []string) (string, error) {
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message: "Continue:",
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("%w: index %d", ErrUnknownAction, idx)
	}
	return options[idx], nil
}

func (s *Session) writeSummary(data stepform.FormData) error {
	switch s.outputFormat {
	case OutputFormatNone:
		return nil
	case OutputFormatJSON:
		out := make(map[string]string, len(data))
		for _, field := range stepform.Fields() {
			out[string(field)] = data.Get(field)
		}
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		_, err := io.WriteString(s.out, prettySummary(data)+"\n")
		return err
	}
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Session) errorf(ctx context.Context, format string, args ...any) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+fmt.Sprintf(format, args...))
}

func prettySummary(data stepform.FormData) string {
	var b strings.Builder
	for i, field := range stepform.Fields() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", field.Label(), data.Get(field))
	}
	return b.String()
}
