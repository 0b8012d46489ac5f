// Package schema describes the informal JSON output schemas used by the
// demos. A schema here is prompt material first: property descriptions
// are human-readable strings that are rendered into the prompt, and
// validation is a shallow key-presence check only.
package schema

import (
	"encoding/json"
	"sort"
)

// Schema describes the structure of a JSON object.
type Schema struct {
	Type       string               `json:"type"`
	Properties map[string]*Property `json:"properties"`
	Required   []string             `json:"required,omitempty"`
}

// Property of a schema.
type Property struct {
	Type        string               `json:"type,omitempty"`
	Description string               `json:"description,omitempty"`
	Enum        []string             `json:"enum,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Required    []string             `json:"required,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
}

// Property type names used in generated schemas.
const (
	Object  = "object"
	String  = "string"
	Integer = "integer"
	Number  = "number"
	Boolean = "boolean"
	Array   = "array"
)

// New creates an object schema from a mapping of field name to
// human-readable description, the shape the demos use most.
func New(fields map[string]string) *Schema {
	properties := make(map[string]*Property, len(fields))
	for name, description := range fields {
		properties[name] = &Property{Description: description}
	}
	return &Schema{Type: Object, Properties: properties}
}

// Keys returns the sorted names of the schema's declared properties.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.Properties))
	for key := range s.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// PromptText renders the schema as indented JSON for inclusion in a
// prompt.
func (s *Schema) PromptText() string {
	text, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return ""
	}
	return string(text)
}

// ValidateKeys confirms that every property declared by the schema is
// present in the given mapping. Value types, nested structure, and
// array contents are deliberately not checked.
func ValidateKeys(data map[string]any, s *Schema) bool {
	if data == nil {
		return false
	}
	for key := range s.Properties {
		if _, ok := data[key]; !ok {
			return false
		}
	}
	return true
}
