// Package emit materializes the derivations of a template as Go source.
//
// Alias mode rewrites the template once, replacing every choice field's type
// with a synthesized type parameter, and emits one generic alias per
// derivation instantiating it with the resolved types.
//
// Struct-generation mode emits one independent struct per derivation with
// the resolved types substituted, optionally dropping fields that resolve to
// struct{}, and keeps the template itself with the default candidates unless
// the DeleteTemplate setting is on.
//
// Declarations are rendered with text/template; the caller formats the file
// they end up in.
package emit
