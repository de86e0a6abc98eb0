package codegen

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadDocument loads the OpenAPI document at path and validates it. Only
// local files are read; external references are rejected.
func LoadDocument(ctx context.Context, path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = false

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return doc, nil
}

// Summary counts what a document will generate.
type Summary struct {
	Title      string
	Version    string
	Paths      int
	Operations int
	Schemas    int
}

// Summarize returns the counts for doc.
func Summarize(doc *openapi3.T) Summary {
	s := Summary{}
	if doc.Info != nil {
		s.Title = doc.Info.Title
		s.Version = doc.Info.Version
	}
	if doc.Paths != nil {
		s.Paths = doc.Paths.Len()
		for _, item := range doc.Paths.Map() {
			s.Operations += len(item.Operations())
		}
	}
	if doc.Components != nil {
		s.Schemas = len(doc.Components.Schemas)
	}
	return s
}
