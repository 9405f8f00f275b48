package stepform

import "maps"

// FormData holds the value of every field. All fields are always present;
// the empty string means unset.
type FormData map[Field]string

// NewFormData returns the all-empty defaults.
func NewFormData() FormData {
	data := make(FormData, len(allFields))
	for _, field := range allFields {
		data[field] = ""
	}
	return data
}

// Get returns the value for field, or "" when absent.
func (d FormData) Get(field Field) string {
	return d[field]
}

// Clone returns a copy normalised to contain every field.
func (d FormData) Clone() FormData {
	out := NewFormData()
	for field, value := range d {
		if field.Valid() {
			out[field] = value
		}
	}
	return out
}

// Equal reports whether both values hold the same field values.
func (d FormData) Equal(other FormData) bool {
	return maps.Equal(d.Clone(), other.Clone())
}

// ErrorMap maps failing fields to their validation message. It only holds
// entries for the step that was last validated; an empty map means valid.
type ErrorMap map[Field]string

// Clone returns a copy of the map, never nil.
func (e ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(e))
	maps.Copy(out, e)
	return out
}

// Has reports whether field has an error.
func (e ErrorMap) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Step enumerates the form phases.
type Step int

const (
	StepContact Step = iota + 1
	StepAddress
	StepReview
)

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepContact, StepAddress, StepReview}
}

// Valid reports whether s is a defined step.
func (s Step) Valid() bool {
	return s >= StepContact && s <= StepReview
}

// Terminal reports whether the step only allows submission.
func (s Step) Terminal() bool {
	return s == StepReview
}

// Title returns the caption shown for the step.
func (s Step) Title() string {
	switch s {
	case StepContact:
		return "Contact Info"
	case StepAddress:
		return "Address Info"
	case StepReview:
		return "Review"
	default:
		return ""
	}
}

// Fields lists the fields shown on the step. The review step shows all of
// them.
func (s Step) Fields() []Field {
	if s == StepReview {
		return Fields()
	}
	var out []Field
	for _, field := range allFields {
		if field.Step() == s {
			out = append(out, field)
		}
	}
	return out
}
