package formvalidation_test

import (
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/Gobd/formvalidation"
)

func TestFieldErrorErr(t *testing.T) {
	minLength := 3
	maxValue := 9.5
	minDate := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		fe   v.FieldError
		code string
		msg  string
	}{
		{fe: v.FieldError{Code: v.CodeEmpty}, code: "empty", msg: "cannot be blank"},
		{fe: v.FieldError{Code: v.CodeLessThanMinLength, Specs: &v.Specs{MinLength: &minLength}}, code: "lessThanMinLength", msg: "must be at least 3 characters long"},
		{fe: v.FieldError{Code: v.CodeMoreThanMaxValue, Specs: &v.Specs{MaxValue: &maxValue}}, code: "moreThanMaxValue", msg: "must be no greater than 9.5"},
		{fe: v.FieldError{Code: v.CodeBeforeMinDate, Specs: &v.Specs{MinDate: &minDate}}, code: "beforeMinDate", msg: "must not be before 2024-02-29"},
		{fe: v.FieldError{Code: "custom"}, code: "custom", msg: "custom"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := tt.fe.Err()
			assert.Equal(t, tt.code, err.Code())
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestErrorsErr(t *testing.T) {
	fv := v.New(map[string]any{"name": "", "age": 15, "email": "a@b.co"}).
		AddValidation([]string{"name"}, v.Required).
		AddValidation([]string{"age"}, v.ValueRange, v.MinValue(18)).
		AddValidation([]string{"email"}, v.ValidEmail)
	require.NoError(t, fv.Err())

	err := fv.Validate().Err()
	require.Error(t, err)
	assert.Equal(t, "age: must be no less than 18; name: cannot be blank.", err.Error())

	var verrs v.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	var ve validation.Error
	require.True(t, errors.As(verrs["name"], &ve))
	assert.Equal(t, "empty", ve.Code())
	assert.Equal(t, map[string]any{"minValue": 18.0}, verrs["age"].(validation.Error).Params())

	assert.NoError(t, v.Errors{}.Err())
}
