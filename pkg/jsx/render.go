package jsx

import (
	"fmt"
	"strings"

	"github.com/recera/reactgen/pkg/tree"
)

// childIndent is the indentation of children inside their parent element
const childIndent = 2

// Options controls how markup is produced
type Options struct {
	// InlineStyles attaches styles as style={...} instead of referencing a
	// per-component stylesheet class
	InlineStyles bool

	// CamelCaseKeys converts inline style keys to DOM names
	CamelCaseKeys bool

	// Strict rejects style rules without a colon
	Strict bool

	// MaxDepth bounds nesting; zero means tree.DefaultMaxDepth
	MaxDepth int
}

// Renderer turns component trees into nested JSX markup
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer
func NewRenderer(opts Options) *Renderer {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = tree.DefaultMaxDepth
	}
	return &Renderer{opts: opts}
}

// Options returns the renderer options with defaults applied
func (r *Renderer) Options() Options {
	return r.opts
}

// Render renders node and its subtree. path identifies the node in error
// messages.
func (r *Renderer) Render(node *tree.ComponentNode, path string) (string, error) {
	return r.render(node, path, 1)
}

func (r *Renderer) render(node *tree.ComponentNode, path string, depth int) (string, error) {
	if depth > r.opts.MaxDepth {
		return "", &tree.DepthLimitError{Limit: r.opts.MaxDepth, Path: path}
	}

	tag := node.Type
	if tag == "" {
		return "", &tree.MissingFieldError{Field: "type", Path: path}
	}

	if r.opts.Strict {
		if err := CheckRules(node.Styles, path); err != nil {
			return "", err
		}
	}

	className := ""
	if !r.opts.InlineStyles {
		className = node.Name
	}
	props := Props(node.Attributes, node.Styles, r.opts, className)

	if node.IsLeaf() {
		return fmt.Sprintf("<%s%s />", tag, props), nil
	}

	children := make([]string, 0, len(node.Children))
	for i := range node.Children {
		child, err := r.render(&node.Children[i], tree.ChildPath(path, i), depth+1)
		if err != nil {
			return "", err
		}
		children = append(children, child)
	}

	inner := Indent(strings.Join(children, "\n"), childIndent)
	return fmt.Sprintf("<%s%s>\n%s\n</%s>", tag, props, inner, tag), nil
}
