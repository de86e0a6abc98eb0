package formvalidation

import (
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// checkTextLength counts runes, so multi-byte characters count once.
func checkTextLength(value any, specs Specs) *FieldError {
	value, _ = validation.Indirect(value)
	s, ok := value.(string)
	if !ok {
		return &FieldError{Code: CodeInvalidInput}
	}
	n := utf8.RuneCountInString(s)
	if specs.MinLength != nil && n < *specs.MinLength {
		return &FieldError{Code: CodeLessThanMinLength, Specs: echo(MinLength(*specs.MinLength))}
	}
	if specs.MaxLength != nil && n > *specs.MaxLength {
		return &FieldError{Code: CodeMoreThanMaxLength, Specs: echo(MaxLength(*specs.MaxLength))}
	}
	return nil
}

func describeTextLength(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef, specs Specs) {
	if specs.MinLength != nil && *specs.MinLength > 0 {
		ref.Value.MinLength = uint64(*specs.MinLength)
	}
	if specs.MaxLength != nil && *specs.MaxLength >= 0 {
		hi := uint64(*specs.MaxLength)
		ref.Value.MaxLength = &hi
	}
}
