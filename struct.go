package formvalidation

import (
	"reflect"
	"strings"

	"github.com/mohae/deepcopy"
)

// fieldState is everything the validator tracks for one field.
type fieldState struct {
	name  string
	value any
	specs Specs
	rules []RuleKind
}

// snapshot deep-copies the enumerable fields of record. Maps with string
// keys and structs (keyed by json tag) are supported; anything else yields
// no fields.
func snapshot(record any) map[string]*fieldState {
	fields := map[string]*fieldState{}
	rv := indirect(record)
	if !rv.IsValid() {
		return fields
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fields
		}
		iter := rv.MapRange()
		for iter.Next() {
			name := iter.Key().String()
			fields[name] = newFieldState(name, iter.Value().Interface())
		}
	case reflect.Struct:
		collectStructFields(rv, fields)
	}
	return fields
}

// collectStructFields walks exported fields, inlining embedded structs the
// way encoding/json does.
func collectStructFields(rv reflect.Value, fields map[string]*fieldState) {
	t := rv.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		fv := rv.Field(i)
		if sf.Anonymous && sf.Tag.Get("json") == "" {
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				collectStructFields(fv, fields)
				continue
			}
		}
		if !sf.IsExported() || !fv.CanInterface() {
			continue
		}
		name, ok := fieldKey(sf)
		if !ok {
			continue
		}
		fields[name] = newFieldState(name, fv.Interface())
	}
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
// Fields tagged json:"-" are reported as absent.
func fieldKey(sf reflect.StructField) (string, bool) {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag == "-" {
		return "", false
	}
	if tag != "" {
		return tag, true
	}
	return sf.Name, true
}

func newFieldState(name string, value any) *fieldState {
	return &fieldState{
		name:  name,
		value: copyValue(value),
	}
}

// copyValue deep-copies value. deepcopy zeroes unexported struct fields, so
// a value that reaches such a struct (netip.Addr, big.Int, decimals) is kept
// as is.
func copyValue(value any) any {
	if hasUnexported(reflect.ValueOf(value), map[uintptr]bool{}) {
		return value
	}
	return deepcopy.Copy(value)
}

func hasUnexported(rv reflect.Value, seen map[uintptr]bool) bool {
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() || seen[rv.Pointer()] {
			return false
		}
		seen[rv.Pointer()] = true
		return hasUnexported(rv.Elem(), seen)
	case reflect.Interface:
		return !rv.IsNil() && hasUnexported(rv.Elem(), seen)
	case reflect.Slice, reflect.Array:
		if k := rv.Type().Elem().Kind(); k <= reflect.Complex128 || k == reflect.String {
			return false
		}
		for i := range rv.Len() {
			if hasUnexported(rv.Index(i), seen) {
				return true
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if hasUnexported(iter.Key(), seen) || hasUnexported(iter.Value(), seen) {
				return true
			}
		}
	case reflect.Struct:
		if rv.Type() == timeType {
			return false
		}
		for i := range rv.NumField() {
			if !rv.Type().Field(i).IsExported() || hasUnexported(rv.Field(i), seen) {
				return true
			}
		}
	}
	return false
}

func indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
