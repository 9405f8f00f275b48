package stepform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// Controller owns the form values, the current step and the errors of the
// last validation. It is meant to be driven by a single host and does no
// locking.
type Controller struct {
	store     Store
	submitter Submitter
	logger    *slog.Logger

	data   FormData
	errors ErrorMap
	step   Step
}

// New builds a Controller on step one. A snapshot found in the store replaces
// the default values; a missing or malformed one leaves the defaults in
// place.
func New(ctx context.Context, options ...Option) *Controller {
	c := &Controller{
		store:  nopStore{},
		logger: slog.Default(),
		data:   NewFormData(),
		errors: make(ErrorMap),
		step:   StepContact,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.submitter == nil {
		c.submitter = LogSubmitter{Logger: c.logger}
	}

	c.restore(ctx)
	return c
}

func (c *Controller) restore(ctx context.Context) {
	raw, err := c.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			c.logger.WarnContext(ctx, "stepform: load snapshot failed, using defaults", slog.Any("error", err))
		}
		return
	}
	data, err := DecodeSnapshot(raw)
	if err != nil {
		c.logger.DebugContext(ctx, "stepform: ignoring malformed snapshot", slog.Any("error", err))
		return
	}
	c.data = data
}

// Data returns a copy of the current values.
func (c *Controller) Data() FormData {
	return c.data.Clone()
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return c.step
}

// Errors returns a copy of the errors from the last validation.
func (c *Controller) Errors() ErrorMap {
	return c.errors.Clone()
}

// UpdateField stores value for field and persists the full snapshot. No
// validation runs here. When persisting fails the new value is kept in
// memory and the error is returned. Values that are not valid UTF-8 are
// rejected with ErrInvalidValue and leave the data unchanged.
func (c *Controller) UpdateField(ctx context.Context, field Field, value string) error {
	if !field.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: field %q", ErrInvalidValue, string(field))
	}
	c.data[field] = value
	return c.persist(ctx)
}

// UpdateFieldByName is UpdateField keyed by wire name.
func (c *Controller) UpdateFieldByName(ctx context.Context, name, value string) error {
	field, ok := ParseField(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return c.UpdateField(ctx, field, value)
}

// ValidateStep checks step against the current values without changing the
// stored errors.
func (c *Controller) ValidateStep(step Step) ErrorMap {
	return ValidateStep(c.data, step)
}

// GoNext validates the current step. Failures are stored and the step stays
// put. On success the errors are cleared and the form advances. The review
// step has no successor, so there GoNext reports false even though its
// validation passes; callers finish the form with Submit.
func (c *Controller) GoNext() bool {
	if !c.validateCurrent() {
		return false
	}
	if c.step.Terminal() {
		return false
	}
	c.step++
	return true
}

// GoPrevious moves back one step, stopping at the first. Errors from the
// last validation are kept.
func (c *Controller) GoPrevious() {
	if c.step > StepContact {
		c.step--
	}
}

// Submit advances like GoNext before the review step. On the review step it
// hands the values to the Submitter, removes the persisted snapshot and
// resets the form to step one with empty values.
//
// A Submitter error leaves the form untouched and returns false. A failure
// to clear the store after a successful hand-off returns true with the
// error.
func (c *Controller) Submit(ctx context.Context) (bool, error) {
	if !c.step.Terminal() {
		return c.GoNext(), nil
	}
	if !c.validateCurrent() {
		return false, nil
	}

	if err := c.submitter.Submit(ctx, c.data.Clone()); err != nil {
		c.logger.WarnContext(ctx, "stepform: submitter rejected form", slog.Any("error", err))
		return false, fmt.Errorf("%w: %w", ErrSubmit, err)
	}

	c.data = NewFormData()
	c.errors = make(ErrorMap)
	c.step = StepContact

	if err := c.store.Clear(ctx); err != nil {
		c.logger.WarnContext(ctx, "stepform: clear snapshot failed", slog.Any("error", err))
		return true, fmt.Errorf("stepform: clear snapshot: %w", err)
	}
	return true, nil
}

func (c *Controller) validateCurrent() bool {
	c.errors = ValidateStep(c.data, c.step)
	return len(c.errors) == 0
}

func (c *Controller) persist(ctx context.Context) error {
	raw, err := EncodeSnapshot(c.data)
	if err != nil {
		return err
	}
	if err := c.store.Save(ctx, raw); err != nil {
		c.logger.WarnContext(ctx, "stepform: save snapshot failed", slog.Any("error", err))
		return fmt.Errorf("stepform: save snapshot: %w", err)
	}
	return nil
}
