// Package naming allocates fresh identifiers for generated code: type
// parameter names for choice fields and numbered field names for position
// keyed templates.
package naming
