package formvalidation

import (
	"encoding/json"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// asNumber converts any integer, unsigned or float value, or a json.Number,
// to float64.
func asNumber(value any) (float64, bool) {
	value, isNil := validation.Indirect(value)
	if isNil {
		return 0, false
	}
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := validation.ToInt(value)
		return float64(i), err == nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := validation.ToUint(value)
		return float64(u), err == nil
	case reflect.Float32, reflect.Float64:
		f, err := validation.ToFloat(value)
		return f, err == nil
	}
	return 0, false
}

func checkValueRange(value any, specs Specs) *FieldError {
	f, ok := asNumber(value)
	if !ok {
		return &FieldError{Code: CodeInvalidInput}
	}
	if specs.MinValue != nil && f < *specs.MinValue {
		return &FieldError{Code: CodeLessThanMinValue, Specs: echo(MinValue(*specs.MinValue))}
	}
	if specs.MaxValue != nil && f > *specs.MaxValue {
		return &FieldError{Code: CodeMoreThanMaxValue, Specs: echo(MaxValue(*specs.MaxValue))}
	}
	return nil
}

func describeValueRange(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef, specs Specs) {
	if specs.MinValue != nil {
		lo := *specs.MinValue
		ref.Value.Min = &lo
	}
	if specs.MaxValue != nil {
		hi := *specs.MaxValue
		ref.Value.Max = &hi
	}
}
