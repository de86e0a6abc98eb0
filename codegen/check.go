package codegen

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	v "github.com/Gobd/formvalidation"
)

// Error codes for constraints between options.
const (
	CodeRequiresOption  v.ErrorCode = "requiresOption"
	CodeConflictsOption v.ErrorCode = "conflictsOption"
	CodeUnknownTemplate v.ErrorCode = "unknownTemplate"
)

// maxModuleNameIndex bounds --module-name-index to a sensible path depth.
const maxModuleNameIndex = 16

// Check validates the resolved options: required options, value bounds,
// the client template name and the Requires/Conflicts pairs of the option
// table. It returns [v.ValidationErrors] keyed by option name, or nil.
func (c *Config) Check() error {
	fv := v.New(c, v.WithCustomRules())

	var required []string
	for _, o := range Options {
		if o.Required {
			required = append(required, o.Name)
		}
	}
	fv.AddValidation(required, v.Required).
		AddValidation([]string{"input", "output", "name", "templates"}, v.NoWhitespace).
		AddValidation([]string{"name"}, v.TextLength, v.MinLength(1), v.MaxLength(255)).
		AddValidation([]string{"module-name-index"}, v.ValueRange, v.MinValue(0), v.MaxValue(maxModuleNameIndex))

	fv.AddCustomValidator([]string{"client", "templates"}, []string{"client"}, func(values map[string]any) *v.FieldError {
		if dir, _ := values["templates"].(string); dir != "" {
			return nil
		}
		if name, _ := values["client"].(string); name != "" {
			if _, ok := LookupTemplate(name); ok {
				return nil
			}
		}
		return &v.FieldError{Code: CodeUnknownTemplate}
	})

	messages := map[string]string{}
	for _, o := range Options {
		for _, req := range o.Requires {
			fv.AddCustomValidator([]string{o.Name, req}, []string{o.Name}, pairRule(o.Name, req, true))
			messages[messageKey(o.Name, CodeRequiresOption)] = fmt.Sprintf("--%s requires --%s", o.Name, req)
		}
		for _, other := range o.Conflicts {
			fv.AddCustomValidator([]string{o.Name, other}, []string{o.Name}, pairRule(o.Name, other, false))
			messages[messageKey(o.Name, CodeConflictsOption)] = fmt.Sprintf("--%s cannot be used with --%s", o.Name, other)
		}
	}

	errs := fv.Validate().Errors()
	if len(errs) == 0 {
		return nil
	}
	out := make(v.ValidationErrors, len(errs))
	for name, fe := range errs {
		switch fe.Code {
		case CodeRequiresOption, CodeConflictsOption:
			out[name] = validation.NewError(string(fe.Code), messages[messageKey(name, fe.Code)])
		case CodeUnknownTemplate:
			out[name] = validation.NewError(string(fe.Code), fmt.Sprintf("unknown client template %q, supported values: %v", c.Client, TemplateNames()))
		default:
			out[name] = fe.Err()
		}
	}
	return out
}

// pairRule fails when name is active and other is inactive (requires) or
// also active (conflicts). An option is active when its value differs from
// its default.
func pairRule(name, other string, requires bool) v.CustomFunc {
	return func(values map[string]any) *v.FieldError {
		if !active(name, values[name]) {
			return nil
		}
		otherActive := active(other, values[other])
		switch {
		case requires && !otherActive:
			return &v.FieldError{Code: CodeRequiresOption}
		case !requires && otherActive:
			return &v.FieldError{Code: CodeConflictsOption}
		}
		return nil
	}
}

func active(name string, value any) bool {
	o, ok := LookupOption(name)
	return ok && value != nil && value != o.Default
}

func messageKey(name string, code v.ErrorCode) string {
	return name + ":" + string(code)
}
