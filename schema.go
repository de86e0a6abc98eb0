package formvalidation

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema describes the record as an OpenAPI object schema. Each property is
// typed from the snapshot value and annotated by the rules registered for it,
// so the same rule set drives both validation and generated clients.
func (v *FieldValidator) Schema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for _, name := range v.order {
		f := v.fields[name]
		ref := &openapi3.SchemaRef{Value: schemaForValue(f.value)}
		for _, kind := range f.rules {
			describeRule(kind, name, schema, ref, f.specs)
		}
		schema.WithProperty(name, ref.Value)
	}
	return schema
}

// describeRule applies the schema side of kind. Repeated kinds are harmless
// except for required, which is only listed once.
func describeRule(kind RuleKind, name string, schema *openapi3.Schema, ref *openapi3.SchemaRef, specs Specs) {
	switch kind {
	case Required:
		for _, r := range schema.Required {
			if r == name {
				return
			}
		}
		describeRequired(name, schema, ref)
	case IsDate:
		describeDate(name, schema, ref)
	case NoWhitespace:
		describeNoWhitespace(name, schema, ref)
	case DateRange:
		describeDateRange(name, schema, ref, specs)
	case TextLength:
		describeTextLength(name, schema, ref, specs)
	case ValueRange:
		describeValueRange(name, schema, ref, specs)
	case ValidEmail:
		describeEmail(name, schema, ref)
	case StrongPassword:
		describePassword(name, schema, ref)
	case IsPhoneNumber:
		describePhoneNumber(name, schema, ref)
	}
}

var timeType = reflect.TypeOf(time.Time{})

// schemaForValue picks a base schema from the Go type of value. Unknown or
// nil values get an untyped schema.
func schemaForValue(value any) *openapi3.Schema {
	rv := indirect(value)
	if !rv.IsValid() {
		return openapi3.NewSchema()
	}
	if rv.Type() == timeType {
		return openapi3.NewDateTimeSchema()
	}
	if _, ok := rv.Interface().(json.Number); ok {
		return openapi3.NewFloat64Schema()
	}

	switch rv.Kind() {
	case reflect.String:
		return openapi3.NewStringSchema()
	case reflect.Bool:
		return openapi3.NewBoolSchema()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return openapi3.NewIntegerSchema()
	case reflect.Float32, reflect.Float64:
		return openapi3.NewFloat64Schema()
	case reflect.Slice, reflect.Array:
		return openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
	case reflect.Map, reflect.Struct:
		return openapi3.NewObjectSchema()
	}
	return openapi3.NewSchema()
}
