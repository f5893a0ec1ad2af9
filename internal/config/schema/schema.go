// Package schema validates the editor settings tree against the embedded
// editor schema.
//
// The schema is a small JSON Schema subset: typed properties, nested
// objects with additionalProperties disabled, enums, and numeric bounds.
// Validation is strict by construction; an unknown field anywhere in the
// editor tree is an error, so config typos never pass silently.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed editor.schema.json
var schemaFS embed.FS

// Type is a JSON Schema primitive type.
type Type string

const (
	TypeObject  Type = "object"
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
)

// Schema describes the allowed shape of one value in the settings tree.
type Schema struct {
	// Title is a descriptive title.
	Title string `json:"title,omitempty"`

	// Description provides documentation.
	Description string `json:"description,omitempty"`

	// Type is the expected JSON type.
	Type Type `json:"type,omitempty"`

	// Properties defines object properties (for type: object).
	Properties map[string]*Schema `json:"properties,omitempty"`

	// AdditionalProperties controls whether extra properties are allowed.
	AdditionalProperties *bool `json:"additionalProperties,omitempty"`

	// Items defines the schema for array elements.
	Items *Schema `json:"items,omitempty"`

	// Enum lists allowed values.
	Enum []any `json:"enum,omitempty"`

	// Minimum for numeric types.
	Minimum *float64 `json:"minimum,omitempty"`

	// Maximum for numeric types.
	Maximum *float64 `json:"maximum,omitempty"`
}

// GetProperty resolves a dot-separated path to a property schema.
// Returns nil if the path isn't defined.
func (s *Schema) GetProperty(path string) *Schema {
	current := s
	for _, part := range strings.Split(path, ".") {
		if current == nil || current.Properties == nil {
			return nil
		}
		current = current.Properties[part]
	}
	return current
}

var loadEditor = sync.OnceValues(func() (*Schema, error) {
	data, err := schemaFS.ReadFile("editor.schema.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded editor schema: %w", err)
	}
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing embedded editor schema: %w", err)
	}
	return &s, nil
})

// Editor returns the embedded editor settings schema, decoded once and
// cached for the life of the process.
func Editor() (*Schema, error) {
	return loadEditor()
}
