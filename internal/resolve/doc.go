// Package resolve resolves a derivation against the choice fields of a
// template.
//
// Each choice field resolves, in declaration order, to the type the
// derivation binds it to, or to the field's first candidate when the
// derivation leaves it unbound or binds it to the wildcard. A bound type must
// be one of the field's candidates.
package resolve
