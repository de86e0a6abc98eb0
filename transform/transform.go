package transform

import (
	"reflect"
	"strings"
)

// TrimSpace runs [strings.TrimSpace] on every string in v. v is a pointer to
// a struct or a map[string]any record; nested structs, pointers, slices and
// maps are walked too.
func TrimSpace(v any) {
	StringFunc(v, strings.TrimSpace)
}

// ToLower runs [strings.ToLower] on every string in v.
func ToLower(v any) {
	StringFunc(v, strings.ToLower)
}

// Multi runs all given functions on v sequentially.
func Multi(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

// StringFunc applies f to every string in v. Values that cannot be set,
// such as a struct passed by value, are left alone.
func StringFunc(v any, f func(string) string) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if !rv.IsNil() {
			apply(rv.Elem(), f)
		}
	case reflect.Map:
		apply(rv, f)
	}
}

// apply rewrites rv in place. Map entries and interface values are not
// addressable, so they are copied, transformed and stored back.
func apply(rv reflect.Value, f func(string) string) { //nolint:revive // reflection walker is inherently complex
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(f(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if rv.Type().Field(i).IsExported() {
				apply(rv.Field(i), f)
			}
		}
	case reflect.Pointer:
		if !rv.IsNil() {
			apply(rv.Elem(), f)
		}
	case reflect.Interface:
		if rv.IsNil() || !rv.CanSet() {
			return
		}
		cp := transformed(rv.Elem(), f)
		rv.Set(cp)
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			apply(rv.Index(i), f)
		}
	case reflect.Map:
		if rv.IsNil() {
			return
		}
		iter := rv.MapRange()
		for iter.Next() {
			rv.SetMapIndex(iter.Key(), transformed(iter.Value(), f))
		}
	}
}

// transformed returns a settable copy of val with f applied.
func transformed(val reflect.Value, f func(string) string) reflect.Value {
	if val.Kind() == reflect.Interface {
		if val.IsNil() {
			return val
		}
		val = val.Elem()
	}
	cp := reflect.New(val.Type()).Elem()
	cp.Set(val)
	apply(cp, f)
	return cp
}
