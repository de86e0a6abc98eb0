package formvalidation

import "slices"

// FieldValidator validates a snapshot of a record. Rules are registered per
// field with AddValidation and evaluated with Validate.
//
// A FieldValidator is meant for sequential use by a single owner; it does no
// locking.
type FieldValidator struct {
	fields    map[string]*fieldState
	order     []string
	custom    []CustomRule
	errors    Errors
	runCustom bool
}

// New snapshots record and returns a validator for its fields. record may be
// a map with string keys or a struct (or pointer to one); struct fields are
// named by their json tag. Any other input produces a validator without
// fields, on which every registration is a no-op.
func New(record any, opts ...Option) *FieldValidator {
	v := &FieldValidator{
		fields: snapshot(record),
		errors: Errors{},
	}
	for name := range v.fields {
		v.order = append(v.order, name)
	}
	slices.Sort(v.order)
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddValidation appends kind to the rules of every named field. Names that
// were not in the record are skipped. specs are merged, in order, into the
// accumulated specs of each field; kinds without parameters ignore them.
//
// The whole call is ignored if kind is unknown, or if kind is parameterized
// and specs carry no bound it uses.
func (v *FieldValidator) AddValidation(fields []string, kind RuleKind, specs ...Specs) *FieldValidator {
	if !kind.IsValid() {
		return v
	}

	var merged Specs
	for _, s := range specs {
		merged = merged.Merge(s)
	}
	if kind.Parameterized() && !merged.appliesTo(kind) {
		return v
	}

	for _, name := range fields {
		f, ok := v.fields[name]
		if !ok {
			continue
		}
		f.rules = append(f.rules, kind)
		if kind.Parameterized() {
			f.specs = f.specs.Merge(merged)
		}
	}
	return v
}

// Set replaces the snapshot of a known field with a copy of value.
// Unknown fields are ignored.
func (v *FieldValidator) Set(field string, value any) *FieldValidator {
	if f, ok := v.fields[field]; ok {
		f.value = copyValue(value)
	}
	return v
}

// Validate evaluates the rules of every field that has any. For each field
// the rules run in registration order and the first failure is recorded.
//
// Only fields that are evaluated have their entry in the error map replaced
// or removed. The map is not reset first: an error for a field that is not
// evaluated in this pass is kept. Use ClearErrors for a full reset.
func (v *FieldValidator) Validate() *FieldValidator {
	failed := map[string]bool{}
	for _, name := range v.order {
		f := v.fields[name]
		if len(f.rules) == 0 {
			continue
		}
		if fe := f.check(); fe != nil {
			v.errors[name] = *fe
			failed[name] = true
			continue
		}
		delete(v.errors, name)
	}

	if v.runCustom {
		v.validateCustom(failed)
	}
	return v
}

// check runs the field's rules until one fails.
func (f *fieldState) check() *FieldError {
	for _, kind := range f.rules {
		if fe := checkRule(kind, f.value, f.specs); fe != nil {
			return fe
		}
	}
	return nil
}

func checkRule(kind RuleKind, value any, specs Specs) *FieldError {
	switch kind {
	case Required:
		return checkRequired(value)
	case IsDate:
		return checkIsDate(value)
	case NoWhitespace:
		return checkNoWhitespace(value)
	case DateRange:
		return checkDateRange(value, specs)
	case TextLength:
		return checkTextLength(value, specs)
	case ValueRange:
		return checkValueRange(value, specs)
	case ValidEmail:
		return checkEmail(value)
	case StrongPassword:
		return checkPassword(value)
	case IsPhoneNumber:
		return checkPhoneNumber(value)
	}
	return nil
}

// Errors returns the error map. It is the validator's own map, not a copy.
func (v *FieldValidator) Errors() Errors {
	return v.errors
}

// Error returns the error recorded for field, if any.
func (v *FieldValidator) Error(field string) (FieldError, bool) {
	fe, ok := v.errors[field]
	return fe, ok
}

// Valid reports whether no field currently has an error.
func (v *FieldValidator) Valid() bool {
	return len(v.errors) == 0
}

// ClearErrors empties the error map.
func (v *FieldValidator) ClearErrors() *FieldValidator {
	clear(v.errors)
	return v
}

// Fields returns the names of the snapshotted fields in sorted order.
func (v *FieldValidator) Fields() []string {
	return slices.Clone(v.order)
}

// Specs returns the specs merged so far for field.
func (v *FieldValidator) Specs(field string) (Specs, bool) {
	f, ok := v.fields[field]
	if !ok {
		return Specs{}, false
	}
	return f.specs, true
}

// Rules returns the rule kinds registered for field, in order.
func (v *FieldValidator) Rules(field string) []RuleKind {
	f, ok := v.fields[field]
	if !ok {
		return nil
	}
	return slices.Clone(f.rules)
}
