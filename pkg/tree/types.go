// Package tree holds the typed UI description consumed by the generator:
// pages made of components, components made of nested children.
package tree

// Document is the root of a UI description
type Document struct {
	Pages []PageNode `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// PageNode represents one routed page
type PageNode struct {
	// Label names the page file, its component function and its route
	Label string `json:"label" yaml:"label"`

	// Contents are the top-level components composed by the page
	Contents []ComponentNode `json:"contents,omitempty" yaml:"contents,omitempty"`
}

// ComponentNode represents one UI element and its subtree
type ComponentNode struct {
	// Type is the element tag (e.g. "div", "button")
	Type string `json:"type" yaml:"type"`

	// Name identifies the component file and function. Required at the top
	// level of a page, optional for children.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Attributes in document order
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	// Styles are raw "property: value" rules
	Styles []string `json:"styles,omitempty" yaml:"styles,omitempty"`

	Children []ComponentNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsLeaf reports whether the node renders as a self-closing element
func (n *ComponentNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Attribute is a single name="value" pair
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an attribute mapping that keeps document order. A repeated
// name keeps its first position and takes the last value.
type Attributes []Attribute

// Get returns the value for name
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value for name in place or appends a new attribute
func (a *Attributes) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}
