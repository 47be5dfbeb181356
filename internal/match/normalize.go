package match

import (
	"strings"
	"unicode"
)

// NormalizeTypeName normalizes a declared Java type name for fuzzy matching.
// The pipeline:
// 1. Drop the package qualifier of the outer type ("java.util.List" -> "List").
// 2. Drop whitespace.
// 3. Case-fold to lower.
//
// Array brackets and generic arguments are kept, so "int[]" and "int" stay
// distinguishable.
func NormalizeTypeName(s string) string {
	s = strings.TrimSpace(s)

	outer, rest := s, ""
	if i := strings.IndexAny(s, "<["); i >= 0 {
		outer, rest = s[:i], s[i:]
	}

	if i := strings.LastIndexByte(outer, '.'); i >= 0 {
		outer = outer[i+1:]
	}

	return strings.ToLower(stripSpaces(outer + rest))
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
