package formvalidation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	minPasswordLength = 8
	minPhoneDigits    = 7
)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	return s != "" && govalidator.IsEmail(s)
}

// IsPhone reports whether s is an E.164 number of at least seven
// digits once spaces, dashes, dots and parentheses are removed, e.g.
// "+1 (555) 010-9999".
func IsPhone(s string) bool {
	s = phoneSeparators.Replace(strings.TrimSpace(s))
	if len(strings.TrimPrefix(s, "+")) < minPhoneDigits {
		return false
	}
	return is.E164.Validate(s) == nil
}

// IsStrongPassword reports whether s has at least eight characters and mixes
// upper case, lower case, digits and symbols.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// stringCheck fails with code unless value is a string accepted by ok.
func stringCheck(value any, ok func(string) bool, code ErrorCode) *FieldError {
	value, _ = validation.Indirect(value)
	s, isString := value.(string)
	if !isString || !ok(s) {
		return &FieldError{Code: code}
	}
	return nil
}

func checkEmail(value any) *FieldError {
	return stringCheck(value, IsEmail, CodeInvalidEmail)
}

func checkPhoneNumber(value any) *FieldError {
	return stringCheck(value, IsPhone, CodeInvalidPhoneNumber)
}

func checkPassword(value any) *FieldError {
	return stringCheck(value, IsStrongPassword, CodeWeakPassword)
}

func describeEmail(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) {
	ref.Value.Format = "email"
}

func describePhoneNumber(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) {
	appendDescription(ref, "phone number in international format")
}

func describePassword(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) {
	ref.Value.Format = "password"
	appendDescription(ref, "at least 8 characters with upper case, lower case, digit and symbol")
}
