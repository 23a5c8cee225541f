// Package engine is the definition-level entry point of either-gen. It runs
// one invocation for one annotated type declaration: it parses the directive,
// extracts the choice fields, expands the derivations and turns every failure
// into a positioned diagnostic.
//
// Invocations share no state. A failing invocation never affects other
// definitions of the same file.
package engine
