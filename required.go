package formvalidation

import (
	"reflect"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IsEmpty reports whether value holds nothing: nil, an empty string, an empty
// slice, array or map, a zero time, or a struct without fields. Numbers and
// booleans are never empty, and neither is a struct that has fields, even
// when they are all zero.
func IsEmpty(value any) bool {
	value, isNil := validation.Indirect(value)
	if isNil || value == nil {
		return true
	}
	if t, ok := value.(time.Time); ok {
		return t.IsZero()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Struct:
		return rv.NumField() == 0
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func checkRequired(value any) *FieldError {
	if IsEmpty(value) {
		return &FieldError{Code: CodeEmpty}
	}
	return nil
}

func checkNoWhitespace(value any) *FieldError {
	value, _ = validation.Indirect(value)
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return &FieldError{Code: CodeIsWhitespace}
	}
	return nil
}

func describeRequired(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) {
	schema.Required = append(schema.Required, name)
}

func describeNoWhitespace(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) {
	appendDescription(ref, "must not be only whitespace")
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
