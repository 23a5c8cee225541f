// Package template builds the model of a struct template from its Go
// declaration and extracts its choice fields.
//
// A template is a struct type whose doc comment ends with an
// "//either:template" directive. Its choice fields have the either.Choice
// marker as their type, resolved through the file's imports, and list their
// candidate types in the "either" struct tag.
//
// Fields are keyed by name, or by position when every field of the struct is
// blank. A Definition is read-only once built.
package template
