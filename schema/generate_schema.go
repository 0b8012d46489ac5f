package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Generate generates a JSON schema for the given Go type. It uses
// reflection to analyze the type structure and returns a Schema that
// can be rendered into a prompt.
//
// Example:
//
//	type Analysis struct {
//	  Tables     []string `json:"tables" description:"list of table names"`
//	  Complexity string   `json:"complexity" enum:"low,medium,high"`
//	}
//	schema, err := Generate(Analysis{})
func Generate(v any) (*Schema, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("cannot generate schema for nil value")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	prop, err := reflectType(t)
	if err != nil {
		return nil, err
	}
	if t.Kind() != reflect.Struct {
		return &Schema{Type: prop.Type}, nil
	}
	return &Schema{
		Type:       prop.Type,
		Properties: prop.Properties,
		Required:   prop.Required,
	}, nil
}

// reflectType recursively analyzes a reflect.Type and returns a Property
// that describes its JSON schema representation.
func reflectType(t reflect.Type) (*Property, error) {
	switch t.Kind() {
	case reflect.String:
		return &Property{Type: String}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Property{Type: Integer}, nil

	case reflect.Float32, reflect.Float64:
		return &Property{Type: Number}, nil

	case reflect.Bool:
		return &Property{Type: Boolean}, nil

	case reflect.Slice, reflect.Array:
		items, err := reflectType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("failed to reflect array/slice element type: %w", err)
		}
		return &Property{Type: Array, Items: items}, nil

	case reflect.Struct:
		return reflectStruct(t)

	case reflect.Ptr:
		return reflectType(t.Elem())

	case reflect.Interface:
		// For interface{} or any, we don't specify a type to allow any JSON value
		return &Property{}, nil

	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind().String())
	}
}

// reflectStruct analyzes a struct type and returns a Property representing
// an object schema with properties and required fields.
func reflectStruct(t reflect.Type) (*Property, error) {
	properties := make(map[string]*Property)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonName, isRequired := parseJSONTag(field)
		if jsonName == "-" {
			continue
		}

		prop, err := reflectType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to reflect field %s: %w", field.Name, err)
		}

		if desc := field.Tag.Get("description"); desc != "" {
			prop.Description = desc
		}
		if enum := field.Tag.Get("enum"); enum != "" {
			prop.Enum = strings.Split(enum, ",")
		}

		if checkRequired(field, isRequired) {
			required = append(required, jsonName)
		}
		properties[jsonName] = prop
	}

	return &Property{
		Type:       Object,
		Properties: properties,
		Required:   required,
	}, nil
}

// parseJSONTag extracts the JSON field name and omitempty flag from a
// struct field's json tag. Returns the field name and whether the field
// is required (not omitempty).
func parseJSONTag(field reflect.StructField) (name string, required bool) {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return field.Name, true
	}

	parts := strings.Split(jsonTag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}

	required = true
	for _, part := range parts[1:] {
		if part == "omitempty" {
			required = false
			break
		}
	}
	return name, required
}

// checkRequired determines if a field should be marked as required. An
// explicit required tag takes precedence over the json tag.
func checkRequired(field reflect.StructField, jsonRequired bool) bool {
	if req := field.Tag.Get("required"); req != "" {
		if val, err := strconv.ParseBool(req); err == nil {
			return val
		}
	}
	return jsonRequired
}
