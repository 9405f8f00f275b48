package stepform

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var snapshotSchemaOnce = sync.OnceValue(buildSnapshotSchema)

// SnapshotSchema describes the persisted snapshot: an object whose known
// properties are strings. It only checks shape, since in-progress input is
// allowed to be invalid.
func SnapshotSchema() *openapi3.Schema {
	return buildSnapshotSchema()
}

// SubmissionSchema describes a completed FormData, expressing the per-step
// validation rules as required properties and patterns. Hosts can publish it
// as the request body of the endpoint that receives submissions.
func SubmissionSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = "MultiStepFormData"
	for _, field := range allFields {
		prop := openapi3.NewStringSchema()
		prop.Title = field.Label()
		r := fieldRule(field)
		switch {
		case r.pattern != nil:
			prop = prop.WithPattern(r.pattern.String())
		case r.required != "":
			prop = prop.WithPattern(`\S`)
		}
		if r.required != "" {
			schema.Required = append(schema.Required, string(field))
		}
		schema = schema.WithProperty(string(field), prop)
	}
	return schema
}

func buildSnapshotSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = "MultiStepFormSnapshot"
	for _, field := range allFields {
		schema = schema.WithProperty(string(field), openapi3.NewStringSchema())
	}
	return schema
}
