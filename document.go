package formvalidation

import "time"

type (
	// RuleKind names one of the built-in validation behaviors.
	RuleKind string

	// ErrorCode identifies why a field failed.
	ErrorCode string

	// Specs holds the optional bounds used by the parameterized rule kinds.
	// Only non-nil bounds are applied.
	Specs struct {
		MinLength *int       `json:"minLength,omitempty" yaml:"minLength,omitempty"`
		MaxLength *int       `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
		MinValue  *float64   `json:"minValue,omitempty" yaml:"minValue,omitempty"`
		MaxValue  *float64   `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
		MinDate   *time.Time `json:"minDate,omitempty" yaml:"minDate,omitempty"`
		MaxDate   *time.Time `json:"maxDate,omitempty" yaml:"maxDate,omitempty"`
	}

	// FieldError is the single failure recorded for a field. Specs echoes
	// back the bound that was violated, if any, so callers can format a message.
	FieldError struct {
		Code  ErrorCode `json:"errorCode"`
		Specs *Specs    `json:"specs,omitempty"`
	}

	// Errors maps field names to their failure. A missing key means the
	// field passed every rule.
	Errors map[string]FieldError

	// CustomFunc evaluates a custom rule against the named input values.
	// It returns nil when the values are acceptable.
	CustomFunc func(values map[string]any) *FieldError

	// CustomRule spans several fields: it reads InputFields and reports
	// its error on every field in TargetFields.
	CustomRule struct {
		InputFields  []string
		TargetFields []string
		Evaluate     CustomFunc
	}

	// Option configures a FieldValidator.
	Option func(*FieldValidator)
)

// Rule kinds without parameters.
const (
	Required       RuleKind = "required"
	IsDate         RuleKind = "isDate"
	NoWhitespace   RuleKind = "noWhitespace"
	ValidEmail     RuleKind = "validEmail"
	StrongPassword RuleKind = "strongPassword"
	IsPhoneNumber  RuleKind = "isPhoneNumber"
)

// Rule kinds parameterized by Specs.
const (
	DateRange  RuleKind = "dateRange"
	TextLength RuleKind = "textLength"
	ValueRange RuleKind = "valueRange"
)

const (
	CodeEmpty              ErrorCode = "empty"
	CodeInvalidDate        ErrorCode = "invalidDate"
	CodeIsWhitespace       ErrorCode = "isWhitespace"
	CodeBeforeMinDate      ErrorCode = "beforeMinDate"
	CodeAfterMaxDate       ErrorCode = "afterMaxDate"
	CodeInvalidInput       ErrorCode = "invalidInput"
	CodeLessThanMinLength  ErrorCode = "lessThanMinLength"
	CodeMoreThanMaxLength  ErrorCode = "moreThanMaxLength"
	CodeLessThanMinValue   ErrorCode = "lessThanMinValue"
	CodeMoreThanMaxValue   ErrorCode = "moreThanMaxValue"
	CodeInvalidEmail       ErrorCode = "invalidEmail"
	CodeWeakPassword       ErrorCode = "weakPassword"
	CodeInvalidPhoneNumber ErrorCode = "invalidPhoneNumber"
)

// WithCustomRules makes Validate run the rules registered with
// AddCustomValidator after the per-field rules. Without it custom rules are
// stored but never evaluated.
func WithCustomRules() Option {
	return func(v *FieldValidator) {
		v.runCustom = true
	}
}
