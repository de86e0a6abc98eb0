package formvalidation

import "slices"

// AddCustomValidator stores a rule that reads inputs and reports on targets.
// Custom rules only run when the validator was built WithCustomRules.
func (v *FieldValidator) AddCustomValidator(inputs, targets []string, fn CustomFunc) *FieldValidator {
	if len(inputs) == 0 || len(targets) == 0 || fn == nil {
		return v
	}
	v.custom = append(v.custom, CustomRule{
		InputFields:  slices.Clone(inputs),
		TargetFields: slices.Clone(targets),
		Evaluate:     fn,
	})
	return v
}

// validateCustom runs custom rules in registration order. A target that
// already failed a field rule in this pass keeps that error; otherwise it
// gets the first custom error reported for it.
func (v *FieldValidator) validateCustom(failed map[string]bool) {
	for _, cr := range v.custom {
		for _, t := range cr.TargetFields {
			if _, ok := v.fields[t]; ok && !failed[t] {
				delete(v.errors, t)
			}
		}
	}

	for _, cr := range v.custom {
		values := make(map[string]any, len(cr.InputFields))
		for _, in := range cr.InputFields {
			if f, ok := v.fields[in]; ok {
				values[in] = copyValue(f.value)
			} else {
				values[in] = nil
			}
		}
		fe := cr.Evaluate(values)
		if fe == nil {
			continue
		}
		for _, t := range cr.TargetFields {
			if _, ok := v.fields[t]; !ok || failed[t] {
				continue
			}
			v.errors[t] = *fe
			failed[t] = true
		}
	}
}
