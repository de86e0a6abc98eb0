package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gobd/formvalidation/transform"
)

type address struct {
	Street string
	City   *string
}

type profile struct {
	Name     string
	Nick     *string
	Address  address
	Aliases  []string
	Labels   map[string]string
	Homes    map[string]address
	Extra    any
	Count    int
	internal string
}

func ptr(s string) *string { return &s }

func TestTrimSpaceStruct(t *testing.T) {
	p := &profile{
		Name:     "  Ann ",
		Nick:     ptr(" annie "),
		Address:  address{Street: " Main St ", City: ptr(" Springfield ")},
		Aliases:  []string{" a ", "b "},
		Labels:   map[string]string{"k": " v "},
		Homes:    map[string]address{"x": {Street: " Elm "}},
		Extra:    " raw ",
		Count:    3,
		internal: " keep ",
	}
	transform.TrimSpace(p)

	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, "annie", *p.Nick)
	assert.Equal(t, "Main St", p.Address.Street)
	assert.Equal(t, "Springfield", *p.Address.City)
	assert.Equal(t, []string{"a", "b"}, p.Aliases)
	assert.Equal(t, map[string]string{"k": "v"}, p.Labels)
	assert.Equal(t, "Elm", p.Homes["x"].Street)
	assert.Equal(t, "raw", p.Extra)
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, " keep ", p.internal)
}

func TestTrimSpaceRecord(t *testing.T) {
	rec := map[string]any{
		"name":   " Ann ",
		"age":    30,
		"tags":   []any{" a ", 1, nil},
		"nested": map[string]any{"city": " Rome "},
		"none":   nil,
	}
	transform.TrimSpace(rec)

	assert.Equal(t, map[string]any{
		"name":   "Ann",
		"age":    30,
		"tags":   []any{"a", 1, nil},
		"nested": map[string]any{"city": "Rome"},
		"none":   nil,
	}, rec)
}

func TestStructValueIsIgnored(t *testing.T) {
	p := profile{Name: " Ann "}
	transform.TrimSpace(p)
	assert.Equal(t, " Ann ", p.Name)
}

func TestMulti(t *testing.T) {
	rec := map[string]any{"email": " Ann@Example.COM "}
	transform.Multi(rec, transform.TrimSpace, transform.ToLower)
	assert.Equal(t, "ann@example.com", rec["email"])

	transform.StringFunc(rec, strings.ToUpper)
	assert.Equal(t, "ANN@EXAMPLE.COM", rec["email"])
}
