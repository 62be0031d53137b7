// Package signature renders call signatures as source-like expressions bounded
// by a maximum line width.
package signature

import "strings"

// DefaultMaxLineLength bounds rendered signatures when no width is configured.
const DefaultMaxLineLength = 110

// Format renders name and parameter tokens as a call expression. The
// single-line form is used whenever its length fits within maxLen (a tie
// renders single-line); otherwise each parameter goes on its own indented
// line, comma-terminated except for the last. Parameter tokens are reproduced
// verbatim, so defaults and variadic markers appear exactly as declared.
func Format(name string, params []string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLineLength
	}
	single := name + "(" + strings.Join(params, ", ") + ")"
	if len(single) <= maxLen || len(params) == 0 {
		return single
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("(\n")
	for i, p := range params {
		b.WriteString("    ")
		b.WriteString(p)
		if i < len(params)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}
