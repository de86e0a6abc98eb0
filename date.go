package formvalidation

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// dateLayout is used when bounds are written into schema descriptions.
const dateLayout = "2006-01-02"

// asDate returns value as a time.Time if it is one (or a non-nil pointer to one).
func asDate(value any) (time.Time, bool) {
	value, isNil := validation.Indirect(value)
	if isNil {
		return time.Time{}, false
	}
	t, ok := value.(time.Time)
	return t, ok
}

// ClearTime returns the start of t's day in t's location.
func ClearTime(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func checkIsDate(value any) *FieldError {
	if _, ok := asDate(value); !ok {
		return &FieldError{Code: CodeInvalidDate}
	}
	return nil
}

// checkDateRange compares calendar days only. Bounds are moved into the
// value's location before their time of day is cleared.
func checkDateRange(value any, specs Specs) *FieldError {
	t, ok := asDate(value)
	if !ok {
		return &FieldError{Code: CodeInvalidDate}
	}
	day := ClearTime(t)

	if specs.MinDate != nil {
		lo := ClearTime(specs.MinDate.In(t.Location()))
		if day.Before(lo) {
			return &FieldError{Code: CodeBeforeMinDate, Specs: echo(MinDate(*specs.MinDate))}
		}
	}
	if specs.MaxDate != nil {
		hi := ClearTime(specs.MaxDate.In(t.Location()))
		if day.After(hi) {
			return &FieldError{Code: CodeAfterMaxDate, Specs: echo(MaxDate(*specs.MaxDate))}
		}
	}
	return nil
}

func describeDate(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) {
	ref.Value.Format = "date-time"
}

func describeDateRange(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef, specs Specs) {
	describeDate(name, schema, ref)
	if specs.MinDate != nil {
		appendDescription(ref, ">= "+specs.MinDate.Format(dateLayout))
	}
	if specs.MaxDate != nil {
		appendDescription(ref, "<= "+specs.MaxDate.Format(dateLayout))
	}
}
