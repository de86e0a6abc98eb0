package formvalidation

import (
	"fmt"
	"slices"
)

var ruleKinds = []RuleKind{
	Required,
	IsDate,
	NoWhitespace,
	ValidEmail,
	StrongPassword,
	IsPhoneNumber,
	DateRange,
	TextLength,
	ValueRange,
}

// RuleKinds returns every supported rule kind.
func RuleKinds() []RuleKind {
	return slices.Clone(ruleKinds)
}

// IsValid reports whether k is one of the built-in rule kinds.
func (k RuleKind) IsValid() bool {
	return slices.Contains(ruleKinds, k)
}

// Parameterized reports whether k needs Specs to do anything.
func (k RuleKind) Parameterized() bool {
	switch k {
	case DateRange, TextLength, ValueRange:
		return true
	}
	return false
}

func (k RuleKind) String() string {
	return string(k)
}

// ParseRuleKind converts s to a RuleKind.
func ParseRuleKind(s string) (RuleKind, error) {
	k := RuleKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown rule kind %q, supported values: %v", s, ruleKinds)
	}
	return k, nil
}
