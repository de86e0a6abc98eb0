package formvalidation

import validation "github.com/go-ozzo/ozzo-validation/v4"

// ValidationErrors is a map of field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// messages are the English templates used by FieldError.Err. Parameters are
// the echoed specs, e.g. {{.minLength}}.
var messages = map[ErrorCode]string{
	CodeEmpty:              "cannot be blank",
	CodeInvalidDate:        "must be a valid date",
	CodeIsWhitespace:       "must not be only whitespace",
	CodeBeforeMinDate:      "must not be before {{.minDate}}",
	CodeAfterMaxDate:       "must not be after {{.maxDate}}",
	CodeInvalidInput:       "has an invalid type",
	CodeLessThanMinLength:  "must be at least {{.minLength}} characters long",
	CodeMoreThanMaxLength:  "must be no more than {{.maxLength}} characters long",
	CodeLessThanMinValue:   "must be no less than {{.minValue}}",
	CodeMoreThanMaxValue:   "must be no greater than {{.maxValue}}",
	CodeInvalidEmail:       "must be a valid email address",
	CodeWeakPassword:       "must be a stronger password",
	CodeInvalidPhoneNumber: "must be a valid phone number",
}

// Err converts fe to an ozzo-validation error carrying the code, an English
// message and the echoed specs as template parameters.
func (fe FieldError) Err() validation.Error {
	msg, ok := messages[fe.Code]
	if !ok {
		msg = string(fe.Code)
	}
	return validation.NewError(string(fe.Code), msg).SetParams(fe.Specs.params())
}

// Err returns the errors as ValidationErrors, or nil if there are none.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	errs := make(ValidationErrors, len(e))
	for name, fe := range e {
		errs[name] = fe.Err()
	}
	return errs
}

// Err is shorthand for v.Errors().Err().
func (v *FieldValidator) Err() error {
	return v.errors.Err()
}

func (s *Specs) params() map[string]any {
	p := map[string]any{}
	if s == nil {
		return p
	}
	if s.MinLength != nil {
		p["minLength"] = *s.MinLength
	}
	if s.MaxLength != nil {
		p["maxLength"] = *s.MaxLength
	}
	if s.MinValue != nil {
		p["minValue"] = *s.MinValue
	}
	if s.MaxValue != nil {
		p["maxValue"] = *s.MaxValue
	}
	if s.MinDate != nil {
		p["minDate"] = s.MinDate.Format(dateLayout)
	}
	if s.MaxDate != nil {
		p["maxDate"] = s.MaxDate.Format(dateLayout)
	}
	return p
}
