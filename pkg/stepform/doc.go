// Package stepform implements the state machine behind a three step contact
// and address form: field updates, per-step validation, step navigation and
// final submission. Field values are persisted as a JSON snapshot through an
// injected Store after every update so an interrupted session can resume,
// and the snapshot is removed once the form is submitted. Validation failures
// are returned as an ErrorMap for hosts to display; they are never errors.
package stepform
