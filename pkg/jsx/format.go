// Package jsx renders component trees into JSX markup
package jsx

import "strings"

// Indent prefixes every line of text, blank lines included, with the given
// number of spaces. Empty text stays empty.
func Indent(text string, spaces int) string {
	if text == "" {
		return ""
	}

	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// CamelCase converts a hyphenated CSS property into its DOM style key,
// e.g. "background-color" -> "backgroundColor".
func CamelCase(property string) string {
	parts := strings.Split(property, "-")

	var b strings.Builder
	b.WriteString(strings.ToLower(parts[0]))
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}
