// Package docstring rewrites structured docstring sections into markdown.
//
// Docstrings follow the convention of free text followed by headed sections
// ("# Arguments", "# Returns", ...). Recognized headers become bold titles;
// argument-style sections become bullet lists with type annotations pulled
// from the symbol's declared types. Anything else passes through unchanged.
package docstring

import "strings"

// listSections hold name-to-description entries that render as bullets.
// Header matching is case-sensitive.
var listSections = map[string]struct{}{
	"Arguments":  {},
	"Args":       {},
	"Parameters": {},
	"Attributes": {},
	"Raises":     {},
}

// textSections render a bold title and pass their body through.
var textSections = map[string]struct{}{
	"Returns":      {},
	"Example":      {},
	"Examples":     {},
	"Notes":        {},
	"References":   {},
	"Input shape":  {},
	"Output shape": {},
}

// Process converts a docstring to markdown. hints maps documented parameter
// names to their declared types; display renders a type for output (alias
// substitution) and may be nil for the identity. Callers must not invoke
// Process with an empty docstring; symbols without one emit no block at all.
func Process(doc string, hints map[string]string, display func(string) string) string {
	if display == nil {
		display = func(s string) string { return s }
	}
	lines := strings.Split(doc, "\n")
	var out []string
	for i := 0; i < len(lines); {
		header, recognized := sectionHeader(lines[i])
		if !recognized {
			out = append(out, lines[i])
			i++
			continue
		}
		body, next := sectionBody(lines, i+1)
		out = append(out, "__"+header+"__", "")
		if _, isList := listSections[header]; isList {
			out = append(out, bulletize(body, hints, display)...)
		} else {
			out = append(out, dedent(body)...)
		}
		// A blank line after the body keeps the next section's header out
		// of the preceding list.
		out = append(out, "")
		i = next
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// sectionHeader reports whether a line introduces a recognized section.
func sectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "# ") {
		return "", false
	}
	name := strings.TrimSpace(trimmed[2:])
	if _, ok := listSections[name]; ok {
		return name, true
	}
	if _, ok := textSections[name]; ok {
		return name, true
	}
	return "", false
}

// sectionBody collects lines up to the next recognized header.
func sectionBody(lines []string, start int) ([]string, int) {
	end := start
	for end < len(lines) {
		if _, ok := sectionHeader(lines[end]); ok {
			break
		}
		end++
	}
	return lines[start:end], end
}

// bulletize turns "name: description" entries into markdown bullets,
// appending a parenthesized type annotation when the name has a hint.
// Indented continuation lines attach to the preceding bullet.
func bulletize(body []string, hints map[string]string, display func(string) string) []string {
	var out []string
	for _, line := range dedent(body) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		continuation := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		if continuation && len(out) > 0 {
			out[len(out)-1] += " " + trimmed
			continue
		}
		name, desc, found := strings.Cut(trimmed, ":")
		if !found {
			out = append(out, trimmed)
			continue
		}
		name = strings.TrimSpace(name)
		entry := "- __" + name + "__"
		if hint, ok := hints[name]; ok {
			entry += " (" + display(hint) + ")"
		}
		entry += ": " + strings.TrimSpace(desc)
		out = append(out, entry)
	}
	return out
}

// dedent strips the common leading whitespace of the non-blank lines and any
// leading/trailing blank lines.
func dedent(lines []string) []string {
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := leadingWhitespace(line)
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if minIndent > 0 && len(line) >= minIndent {
			line = line[minIndent:]
		}
		out = append(out, line)
	}
	for len(out) > 0 && strings.TrimSpace(out[0]) == "" {
		out = out[1:]
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return out
}

func leadingWhitespace(line string) int {
	count := 0
	for _, r := range line {
		if r == ' ' || r == '\t' {
			count++
			continue
		}
		break
	}
	return count
}
