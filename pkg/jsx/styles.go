package jsx

import (
	"fmt"
	"strings"

	"github.com/recera/reactgen/pkg/tree"
)

// SplitRule splits a "property: value" rule on its first colon and trims
// both halves. ok is false when the rule has no colon.
func SplitRule(rule string) (property, value string, ok bool) {
	property, value, ok = strings.Cut(rule, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(property), strings.TrimSpace(value), true
}

// InlineStyle serializes rules into a style mapping literal such as
// {'color': 'red', 'margin': '0'}. Rules without a colon are skipped.
func InlineStyle(rules []string, camelCaseKeys bool) string {
	entries := make([]string, 0, len(rules))
	for _, rule := range rules {
		property, value, ok := SplitRule(rule)
		if !ok {
			continue
		}
		if camelCaseKeys {
			property = CamelCase(property)
		}
		entries = append(entries, fmt.Sprintf("'%s': '%s'", property, value))
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

// Stylesheet writes the rules verbatim, malformed ones included, into a
// single .selector block.
func Stylesheet(selector string, rules []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(".%s {\n", selector))
	for _, rule := range rules {
		b.WriteString(fmt.Sprintf("  %s;\n", rule))
	}
	b.WriteString("}")
	return b.String()
}

// CheckRules returns a MalformedStyleError for the first rule without a colon
func CheckRules(rules []string, path string) error {
	for _, rule := range rules {
		if !strings.Contains(rule, ":") {
			return &tree.MalformedStyleError{Rule: rule, Path: path}
		}
	}
	return nil
}
