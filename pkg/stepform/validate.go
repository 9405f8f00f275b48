package stepform

import (
	"regexp"
	"strings"
)

var (
	emailPattern   = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	zipCodePattern = regexp.MustCompile(`^\d{6}$`)
)

// rule describes how a single field is checked. A zero rule accepts any
// value.
type rule struct {
	required string
	pattern  *regexp.Regexp
	invalid  string
}

func fieldRule(field Field) rule {
	switch field {
	case FieldName:
		return rule{required: "Name is required"}
	case FieldEmail:
		return rule{required: "Email is required", pattern: emailPattern, invalid: "Email is invalid"}
	case FieldPhone:
		return rule{required: "Phone is required", pattern: phonePattern, invalid: "Phone number must be 10 digits"}
	case FieldAddressLine1:
		return rule{required: "Address Line 1 is required"}
	case FieldAddressLine2:
		return rule{}
	case FieldCity:
		return rule{required: "City is required"}
	case FieldState:
		return rule{required: "State is required"}
	case FieldZipCode:
		return rule{required: "Zip Code is required", pattern: zipCodePattern, invalid: "Zip Code must be 6 digits"}
	default:
		return rule{}
	}
}

// check returns the message for value or "" when it passes. Blankness is
// judged on the trimmed value, the pattern on the raw one.
func (r rule) check(value string) string {
	if r.required != "" && strings.TrimSpace(value) == "" {
		return r.required
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		return r.invalid
	}
	return ""
}

// ValidateStep checks the fields edited on step and returns the failures.
// The review step has no rules and always yields an empty map.
func ValidateStep(data FormData, step Step) ErrorMap {
	errs := make(ErrorMap)
	if step.Terminal() || !step.Valid() {
		return errs
	}
	for _, field := range step.Fields() {
		if msg := fieldRule(field).check(data.Get(field)); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}
