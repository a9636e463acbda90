package tree

import "fmt"

// MissingFieldError reports a required field absent from a node
type MissingFieldError struct {
	Field string // "type", "name" or "label"
	Path  string // node path, e.g. "pages[0].contents[1].children[2]"
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q at %s", e.Field, e.Path)
}

// DepthLimitError reports a component tree nested deeper than allowed
type DepthLimitError struct {
	Limit int
	Path  string
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("component tree exceeds maximum depth %d at %s", e.Limit, e.Path)
}

// MalformedStyleError reports a style rule without a colon. It is only
// raised in strict mode.
type MalformedStyleError struct {
	Rule string
	Path string
}

func (e *MalformedStyleError) Error() string {
	return fmt.Sprintf("malformed style rule %q at %s (expected \"property: value\")", e.Rule, e.Path)
}

// SchemaError carries the details of a strict schema violation
type SchemaError struct {
	Details string
}

func (e *SchemaError) Error() string {
	return "description does not match schema:\n" + e.Details
}

// PagePath returns the path of the i-th page
func PagePath(i int) string {
	return fmt.Sprintf("pages[%d]", i)
}

// ContentPath returns the path of the i-th top-level component of a page
func ContentPath(page string, i int) string {
	return fmt.Sprintf("%s.contents[%d]", page, i)
}

// ChildPath returns the path of the i-th child of a component
func ChildPath(parent string, i int) string {
	return fmt.Sprintf("%s.children[%d]", parent, i)
}
