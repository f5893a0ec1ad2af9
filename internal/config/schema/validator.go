package schema

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Validator validates a settings tree against a schema.
type Validator struct {
	schema *Schema
}

// NewValidator creates a validator for the given schema.
func NewValidator(schema *Schema) *Validator {
	return &Validator{schema: schema}
}

// Validate validates a settings tree against the schema, collecting every
// failure rather than stopping at the first.
func (v *Validator) Validate(data map[string]any) error {
	if v.schema == nil {
		return nil
	}
	errs := &ValidationErrors{}
	v.validateValue("", data, v.schema, errs)
	return errs.AsError()
}

func (v *Validator) validateValue(path string, value any, schema *Schema, errs *ValidationErrors) {
	if schema == nil {
		return
	}

	switch schema.Type {
	case TypeObject:
		v.validateObject(path, value, schema, errs)
	case TypeArray:
		v.validateArray(path, value, schema, errs)
	case TypeString:
		if _, ok := value.(string); !ok {
			errs.AddWithValue(path, fmt.Sprintf("expected string, got %s", typeName(value)), value)
			return
		}
		v.validateEnum(path, value, schema, errs)
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			errs.AddWithValue(path, fmt.Sprintf("expected boolean, got %s", typeName(value)), value)
		}
	case TypeInteger:
		n, ok := intValue(value)
		if !ok {
			errs.AddWithValue(path, fmt.Sprintf("expected integer, got %s", typeName(value)), value)
			return
		}
		v.validateBounds(path, float64(n), schema, errs)
	case TypeNumber:
		n, ok := numberValue(value)
		if !ok {
			errs.AddWithValue(path, fmt.Sprintf("expected number, got %s", typeName(value)), value)
			return
		}
		v.validateBounds(path, n, schema, errs)
	default:
		// Untyped schema accepts anything.
	}
}

func (v *Validator) validateObject(path string, value any, schema *Schema, errs *ValidationErrors) {
	table, ok := value.(map[string]any)
	if !ok {
		errs.AddWithValue(path, fmt.Sprintf("expected table, got %s", typeName(value)), value)
		return
	}

	allowExtra := schema.AdditionalProperties != nil && *schema.AdditionalProperties
	for _, key := range sortedKeys(table) {
		childPath := key
		if path != "" {
			childPath = path + "." + key
		}
		propSchema, known := schema.Properties[key]
		if !known {
			if !allowExtra {
				errs.AddWithValue(childPath, "unknown field", table[key])
			}
			continue
		}
		v.validateValue(childPath, table[key], propSchema, errs)
	}
}

func (v *Validator) validateArray(path string, value any, schema *Schema, errs *ValidationErrors) {
	items, ok := value.([]any)
	if !ok {
		errs.AddWithValue(path, fmt.Sprintf("expected array, got %s", typeName(value)), value)
		return
	}
	if schema.Items == nil {
		return
	}
	for i, item := range items {
		v.validateValue(fmt.Sprintf("%s[%d]", path, i), item, schema.Items, errs)
	}
}

func (v *Validator) validateEnum(path string, value any, schema *Schema, errs *ValidationErrors) {
	if len(schema.Enum) == 0 {
		return
	}
	for _, allowed := range schema.Enum {
		if reflect.DeepEqual(value, allowed) {
			return
		}
	}
	errs.AddWithValue(path, fmt.Sprintf("value %v not in allowed set %v", value, schema.Enum), value)
}

func (v *Validator) validateBounds(path string, n float64, schema *Schema, errs *ValidationErrors) {
	if schema.Minimum != nil && n < *schema.Minimum {
		errs.Add(path, fmt.Sprintf("value %v below minimum %v", n, *schema.Minimum))
	}
	if schema.Maximum != nil && n > *schema.Maximum {
		errs.Add(path, fmt.Sprintf("value %v above maximum %v", n, *schema.Maximum))
	}
}

// intValue extracts an integer from the types the TOML decoder produces.
func intValue(value any) (int64, bool) {
	switch n := value.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

// numberValue accepts integers where a float is expected; TOML writes
// "1" and "1.0" as different types but the schema treats both as numbers.
func numberValue(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64:
		return "integer"
	case float64:
		return "float"
	case time.Time:
		return "datetime"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
