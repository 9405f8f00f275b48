package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoController is returned when a session is built without a
	// controller.
	ErrNoController = errors.New("tui: controller is required")
	// ErrUnknownAction is returned when the driver selects an option the
	// session did not offer.
	ErrUnknownAction = errors.New("tui: unknown action")
)
