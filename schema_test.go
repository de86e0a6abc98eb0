package formvalidation_test

import (
	"context"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/Gobd/formvalidation"
)

func TestSchema(t *testing.T) {
	lo := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	fv := v.New(map[string]any{
		"name":     "",
		"email":    "",
		"age":      0,
		"score":    1.5,
		"password": "",
		"phone":    "",
		"birthday": time.Time{},
		"active":   true,
		"tags":     []string{},
		"misc":     nil,
	}).
		AddValidation([]string{"name", "email"}, v.Required).
		AddValidation([]string{"name"}, v.Required).
		AddValidation([]string{"name"}, v.NoWhitespace).
		AddValidation([]string{"name"}, v.TextLength, v.MinLength(2), v.MaxLength(40)).
		AddValidation([]string{"email"}, v.ValidEmail).
		AddValidation([]string{"age"}, v.ValueRange, v.MinValue(18), v.MaxValue(120)).
		AddValidation([]string{"password"}, v.StrongPassword).
		AddValidation([]string{"phone"}, v.IsPhoneNumber).
		AddValidation([]string{"birthday"}, v.DateRange, v.MinDate(lo))

	schema := fv.Schema()
	require.NoError(t, schema.Validate(context.Background()))

	assert.True(t, schema.Type.Is(openapi3.TypeObject))
	assert.ElementsMatch(t, []string{"name", "email"}, schema.Required)
	assert.Len(t, schema.Properties, 10)

	name := schema.Properties["name"].Value
	assert.True(t, name.Type.Is(openapi3.TypeString))
	assert.Equal(t, uint64(2), name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, uint64(40), *name.MaxLength)
	assert.Equal(t, "must not be only whitespace", name.Description)

	assert.Equal(t, "email", schema.Properties["email"].Value.Format)

	age := schema.Properties["age"].Value
	assert.True(t, age.Type.Is(openapi3.TypeInteger))
	require.NotNil(t, age.Min)
	require.NotNil(t, age.Max)
	assert.InDelta(t, 18, *age.Min, 0)
	assert.InDelta(t, 120, *age.Max, 0)

	assert.True(t, schema.Properties["score"].Value.Type.Is(openapi3.TypeNumber))
	assert.True(t, schema.Properties["active"].Value.Type.Is(openapi3.TypeBoolean))
	assert.True(t, schema.Properties["tags"].Value.Type.Is(openapi3.TypeArray))
	assert.Equal(t, "password", schema.Properties["password"].Value.Format)
	assert.Contains(t, schema.Properties["phone"].Value.Description, "phone number")

	birthday := schema.Properties["birthday"].Value
	assert.Equal(t, "date-time", birthday.Format)
	assert.Equal(t, ">= 2000-01-01", birthday.Description)
}
