// Package diagnostic provides coded, positioned errors and warnings for
// template expansion.
//
// Every diagnostic carries a Code. Codes are grouped into classes that decide
// how much of an invocation survives them:
//   - Grammar and precondition errors abort the invocation, only the
//     diagnostic is emitted
//   - Resolution errors abort the remaining derivations; earlier output stays
//   - Warnings never abort
package diagnostic
