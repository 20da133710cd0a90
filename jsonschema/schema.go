package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Schema      string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Const       any    `json:"const,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// String
	Pattern   string `json:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`

	// Number
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Draft is the dialect written into $schema.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Int returns a pointer to n, for the optional bound fields.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for the optional bound fields.
func Float(f float64) *float64 { return &f }

// String is a string schema.
func String(desc string) *Schema { return &Schema{Type: "string", Description: desc} }

// Number is a number schema.
func Number(desc string) *Schema { return &Schema{Type: "number", Description: desc} }

// Integer is an integer schema.
func Integer(desc string) *Schema { return &Schema{Type: "integer", Description: desc} }

// Array is an array of items.
func Array(items *Schema, desc string) *Schema {
	return &Schema{Type: "array", Items: items, Description: desc}
}

// Object is a closed object with the given properties; required lists the
// mandatory keys.
func Object(desc string, props map[string]*Schema, required ...string) *Schema {
	return &Schema{
		Type:                 "object",
		Description:          desc,
		Properties:           props,
		Required:             required,
		AdditionalProperties: false,
	}
}

// MarshalIndent renders s as indented JSON. go-json's indent encoder does
// not terminate on the recursive Schema type, so the compact encoding is
// indented afterwards.
func MarshalIndent(s *Schema) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
