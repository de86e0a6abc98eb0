package formvalidation

import "time"

// MinLength returns Specs with only the minimum text length set.
func MinLength(n int) Specs {
	return Specs{MinLength: &n}
}

// MaxLength returns Specs with only the maximum text length set.
func MaxLength(n int) Specs {
	return Specs{MaxLength: &n}
}

// MinValue returns Specs with only the minimum numeric value set.
func MinValue(f float64) Specs {
	return Specs{MinValue: &f}
}

// MaxValue returns Specs with only the maximum numeric value set.
func MaxValue(f float64) Specs {
	return Specs{MaxValue: &f}
}

// MinDate returns Specs with only the earliest allowed day set.
func MinDate(t time.Time) Specs {
	return Specs{MinDate: &t}
}

// MaxDate returns Specs with only the latest allowed day set.
func MaxDate(t time.Time) Specs {
	return Specs{MaxDate: &t}
}

// Merge returns s with every non-nil bound of o copied over it.
func (s Specs) Merge(o Specs) Specs {
	if o.MinLength != nil {
		s.MinLength = o.MinLength
	}
	if o.MaxLength != nil {
		s.MaxLength = o.MaxLength
	}
	if o.MinValue != nil {
		s.MinValue = o.MinValue
	}
	if o.MaxValue != nil {
		s.MaxValue = o.MaxValue
	}
	if o.MinDate != nil {
		s.MinDate = o.MinDate
	}
	if o.MaxDate != nil {
		s.MaxDate = o.MaxDate
	}
	return s
}

// IsZero reports whether no bound is set.
func (s Specs) IsZero() bool {
	return s == Specs{}
}

// appliesTo reports whether s carries at least one bound used by kind.
func (s Specs) appliesTo(kind RuleKind) bool {
	switch kind {
	case TextLength:
		return s.MinLength != nil || s.MaxLength != nil
	case ValueRange:
		return s.MinValue != nil || s.MaxValue != nil
	case DateRange:
		return s.MinDate != nil || s.MaxDate != nil
	}
	return false
}

// echo returns a pointer to s for a FieldError. s must not alias the
// bounds of a field.
func echo(s Specs) *Specs {
	return &s
}
