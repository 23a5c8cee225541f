// Package match finds the known name closest to a misspelled one.
//
// Names are compared after normalization (case folded, separators removed)
// with a normalized Levenshtein similarity. Diagnostics use Hint to suggest a
// field, setting or candidate type the user probably meant.
package match
