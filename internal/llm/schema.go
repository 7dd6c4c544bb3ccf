package llm

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hirewise/resume-ingest/constants"
)

// Per-field-kind JSON Schemas (draft 2020-12). Each is sent to the model as
// the output contract and used locally to validate what comes back.
var schemaSources = map[constants.FieldKind]string{
	constants.FieldContact: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"full_name": {"type": ["string", "null"]},
			"email":     {"type": ["string", "null"]},
			"phone":     {"type": "array", "items": {"type": "string"}},
			"linkedin":  {"type": ["string", "null"]},
			"urls":      {"type": "array", "items": {"type": "string"}}
		}
	}`,
	constants.FieldSummary: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"headline": {"type": ["string", "null"]},
			"summary":  {"type": ["string", "null"]}
		}
	}`,
	constants.FieldExperience: `{
		"type": "array",
		"items": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"company":     {"type": ["string", "null"]},
				"title":       {"type": ["string", "null"]},
				"location":    {"type": ["string", "null"]},
				"start_date":  {"type": ["string", "null"]},
				"end_date":    {"type": ["string", "null"]},
				"description": {"type": ["string", "null"]}
			}
		}
	}`,
	constants.FieldEducation: `{
		"type": "array",
		"items": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"institution":    {"type": ["string", "null"]},
				"degree":         {"type": ["string", "null"]},
				"field_of_study": {"type": ["string", "null"]},
				"start_year":     {"type": ["string", "null"]},
				"end_year":       {"type": ["string", "null"]}
			}
		}
	}`,
	constants.FieldSkills: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"technical": {
				"type": "array",
				"items": {
					"type": "object",
					"additionalProperties": false,
					"properties": {
						"category": {"type": "string"},
						"items":    {"type": "array", "items": {"type": "string"}}
					}
				}
			},
			"soft": {"type": "array", "items": {"type": "string"}},
			"languages": {
				"type": "array",
				"items": {
					"type": "object",
					"additionalProperties": false,
					"properties": {
						"language":    {"type": "string"},
						"proficiency": {"type": ["string", "null"]}
					}
				}
			}
		}
	}`,
	constants.FieldCertifications: `{
		"type": "array",
		"items": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"name":   {"type": "string"},
				"issuer": {"type": ["string", "null"]},
				"year":   {"type": ["string", "null"]}
			},
			"required": ["name"]
		}
	}`,
}

var compiled = func() map[constants.FieldKind]*jsonschema.Schema {
	out := make(map[constants.FieldKind]*jsonschema.Schema, len(schemaSources))
	for kind, src := range schemaSources {
		out[kind] = jsonschema.MustCompileString(string(kind)+".schema.json", src)
	}
	return out
}()

// SchemaSource returns the raw schema text for a field kind, for embedding
// in the model prompt.
func SchemaSource(kind constants.FieldKind) (string, bool) {
	s, ok := schemaSources[kind]
	return s, ok
}

// ValidateFragment checks a model response against the field kind's schema.
// Failures unwrap to ErrMalformedResponse.
func ValidateFragment(kind constants.FieldKind, fragment json.RawMessage) error {
	sch, ok := compiled[kind]
	if !ok {
		return fmt.Errorf("no schema for field kind %q", kind)
	}
	var v any
	if err := json.Unmarshal(fragment, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
