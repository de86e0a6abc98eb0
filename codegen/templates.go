package codegen

import (
	"slices"
)

// DefaultTemplate is the client template used when none is chosen.
const DefaultTemplate = "fetch"

// Template is a client flavour the generator ships with.
type Template struct {
	Name        string
	Description string
}

var templates = []Template{
	{Name: "fetch", Description: "client built on the Fetch API"},
	{Name: "axios", Description: "client built on axios"},
	{Name: "ky", Description: "client built on ky"},
}

// Templates returns the registered client templates.
func Templates() []Template {
	return slices.Clone(templates)
}

// TemplateNames returns the names of the registered client templates.
func TemplateNames() []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

// LookupTemplate returns the template called name.
func LookupTemplate(name string) (Template, bool) {
	i := slices.IndexFunc(templates, func(t Template) bool { return t.Name == name })
	if i < 0 {
		return Template{}, false
	}
	return templates[i], true
}
