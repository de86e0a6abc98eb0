// Package transform normalises the strings held by structs and
// map[string]any records, e.g. trimming user input before it is validated.
package transform
