package stepform

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// EncodeSnapshot serializes data as a JSON object of wire name to value.
// Every field is written, including empty ones.
func EncodeSnapshot(data FormData) ([]byte, error) {
	normalized := data.Clone()
	out := make(map[string]string, len(normalized))
	for field, value := range normalized {
		out[string(field)] = value
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("stepform: encode snapshot: %w", err)
	}
	return raw, nil
}

// DecodeSnapshot parses a persisted snapshot. Unknown keys are ignored and
// missing fields default to "". Anything that is not a JSON object of string
// values fails with ErrMalformedSnapshot.
func DecodeSnapshot(raw []byte) (FormData, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrMalformedSnapshot, doc)
	}
	if err := snapshotSchemaOnce().VisitJSON(obj, openapi3.MultiErrors()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	data := NewFormData()
	for _, field := range allFields {
		if value, ok := obj[string(field)].(string); ok {
			data[field] = value
		}
	}
	return data, nil
}
