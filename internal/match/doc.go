// Package match provides type name normalization, Levenshtein distance
// calculation and ranking used to suggest a supported type when a declared
// type has no adapter.
//
// Key functions:
//   - NormalizeTypeName: normalizes a Java type name for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known type names by similarity
package match
