package formvalidation

// Unruled returns the names of fields that have no rule registered, in
// sorted order, leaving out any name in exclude.
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, v.Unruled("nickname"))
func (v *FieldValidator) Unruled(exclude ...string) []string {
	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	for _, name := range v.order {
		if excl[name] || len(v.fields[name].rules) > 0 {
			continue
		}
		missing = append(missing, name)
	}
	return missing
}
