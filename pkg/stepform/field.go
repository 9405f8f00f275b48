package stepform

// Field identifies a form input. The underlying string is the wire name used
// in persisted snapshots and posted forms.
type Field string

const (
	FieldName         Field = "name"
	FieldEmail        Field = "email"
	FieldPhone        Field = "phone"
	FieldAddressLine1 Field = "addressLine1"
	FieldAddressLine2 Field = "addressLine2"
	FieldCity         Field = "city"
	FieldState        Field = "state"
	FieldZipCode      Field = "zipCode"
)

var allFields = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldAddressLine1,
	FieldAddressLine2,
	FieldCity,
	FieldState,
	FieldZipCode,
}

// Fields returns every field in display order.
func Fields() []Field {
	return append([]Field(nil), allFields...)
}

// ParseField resolves a wire name into a Field.
func ParseField(name string) (Field, bool) {
	field := Field(name)
	return field, field.Valid()
}

// Valid reports whether f is one of the defined fields.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldEmail, FieldPhone,
		FieldAddressLine1, FieldAddressLine2, FieldCity, FieldState, FieldZipCode:
		return true
	default:
		return false
	}
}

// Label returns the human readable caption for the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone"
	case FieldAddressLine1:
		return "Address Line 1"
	case FieldAddressLine2:
		return "Address Line 2"
	case FieldCity:
		return "City"
	case FieldState:
		return "State"
	case FieldZipCode:
		return "Zip Code"
	default:
		return string(f)
	}
}

// Step returns the step on which the field is edited.
func (f Field) Step() Step {
	switch f {
	case FieldName, FieldEmail, FieldPhone:
		return StepContact
	case FieldAddressLine1, FieldAddressLine2, FieldCity, FieldState, FieldZipCode:
		return StepAddress
	default:
		return 0
	}
}

// Optional reports whether the field may be left empty.
func (f Field) Optional() bool {
	return f == FieldAddressLine2
}

// InputType is the HTML input type hosts should use for the field.
func (f Field) InputType() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldPhone:
		return "tel"
	default:
		return "text"
	}
}

func (f Field) String() string {
	return string(f)
}
