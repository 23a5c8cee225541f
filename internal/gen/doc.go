// Package gen turns template files into generated Go files.
//
// Every annotated declaration of a template file is replaced by the
// declarations its expansion produces; the rest of the file is copied
// unchanged. The build constraint that keeps the template file out of normal
// builds is removed, a generated-code header is added, and the result is
// formatted with golang.org/x/tools/imports so imports only the template
// needed (the either marker package, typically) are dropped.
//
// Diagnostics of an expansion are written into the output as comments in
// place of the declarations that could not be produced:
//
//	// either-gen: error: UnknownField: derivation A binds unknown field X
package gen
