package gen

import "strings"

// Normalize re-indents flat snippet lines by brace depth.
//
// Each line is trimmed and prefixed with indent plus one tab per nesting
// level. The running depth moves by the line's opening minus closing
// braces after the line is emitted. A line starting with closing braces is
// dedented once per closing brace seen before any opening one; that
// per-line depth is clamped at zero, the running depth is not.
//
// Braces are counted literally, including inside string literals.
func Normalize(lines []string, indent, tab string) []string {
	res := make([]string, 0, len(lines))
	depth := 0

	for _, line := range lines {
		line = strings.TrimSpace(line)

		lineDepth := depth
		opening, closing := 0, 0

		for _, c := range line {
			switch c {
			case '{':
				opening++
			case '}':
				closing++
				if opening <= 0 {
					lineDepth--
				}
			}
		}

		lineDepth = max(lineDepth, 0)
		depth += opening - closing

		res = append(res, indent+strings.Repeat(tab, lineDepth)+line)
	}

	return res
}
