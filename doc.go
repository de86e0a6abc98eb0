// Package formvalidation validates form records field by field and reports
// at most one error per field.
//
// Build a validator from a snapshot of the record, register rules, then
// validate:
//
//	v := formvalidation.New(map[string]any{"name": "", "age": 15}).
//	    AddValidation([]string{"name"}, formvalidation.Required).
//	    AddValidation([]string{"age"}, formvalidation.ValueRange, formvalidation.MinValue(18)).
//	    Validate()
//
//	v.Errors() // name: empty, age: lessThanMinValue {minValue: 18}
//
// Rules of a field run in registration order and stop at the first failure.
// Failures are data ([FieldError]); use [Errors.Err] to turn them into an
// error for HTTP handlers.
//
// The same rule set can describe the record as an OpenAPI schema with
// [FieldValidator.Schema], which is how forms feed generated clients.
//
// Sub-packages:
//   - codegen – option schema and runner for the external OpenAPI client generator
//   - transform – string normalisation for structs and records
package formvalidation
