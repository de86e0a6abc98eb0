// Package codegen resolves the options of the external OpenAPI client
// generator and runs it.
//
// The [Options] table is the single description of every option: it
// produces the CLI flags ([Flags]), names the keys of the YAML config file
// ([LoadConfig]), and renders the generator arguments ([Config.Args]).
// [Config.Check] validates resolved options with a
// formvalidation.FieldValidator, including the Requires and Conflicts
// pairs of the table.
//
// Code generation itself is done by the external executable; this package
// only checks the input document ([LoadDocument]) and invokes it.
package codegen
