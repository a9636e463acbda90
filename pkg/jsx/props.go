package jsx

import (
	"fmt"
	"strings"

	"github.com/recera/reactgen/pkg/tree"
)

const (
	// classBindingAttr replaces the generic "class" attribute
	classBindingAttr = "className"

	// classRefAttr points an element at its generated stylesheet block.
	// Lowercase on purpose: generated output has always used it this way.
	classRefAttr = "classname"
)

// Props serializes attributes and styles into the attribute string that
// follows the tag name. The result starts with a single space, or is empty
// when there is nothing to emit. className is the stylesheet selector used
// in external style mode.
func Props(attrs tree.Attributes, styles []string, opts Options, className string) string {
	props := make([]string, 0, len(attrs)+1)

	for _, attr := range attrs {
		name := attr.Name
		if name == "class" {
			name = classBindingAttr
		}
		props = append(props, fmt.Sprintf(`%s="%s"`, name, attr.Value))
	}

	if len(styles) > 0 {
		if opts.InlineStyles {
			props = append(props, "style="+InlineStyle(styles, opts.CamelCaseKeys))
		} else {
			props = append(props, fmt.Sprintf(`%s="%s"`, classRefAttr, className))
		}
	}

	if len(props) == 0 {
		return ""
	}
	return " " + strings.Join(props, " ")
}
