package stepform

import "errors"

var (
	// ErrUnknownField is returned when an update targets a field the form
	// does not define.
	ErrUnknownField = errors.New("stepform: unknown field")
	// ErrInvalidValue is returned when an update carries a value that is not
	// valid UTF-8 and so cannot be persisted unchanged.
	ErrInvalidValue = errors.New("stepform: value is not valid UTF-8")
	// ErrSnapshotNotFound signals that a Store holds no persisted snapshot.
	ErrSnapshotNotFound = errors.New("stepform: snapshot not found")
	// ErrMalformedSnapshot wraps decode failures for persisted snapshots.
	ErrMalformedSnapshot = errors.New("stepform: malformed snapshot")
	// ErrSubmit wraps failures reported by the Submitter.
	ErrSubmit = errors.New("stepform: submit failed")
)
