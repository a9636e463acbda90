package emitter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/recera/reactgen/pkg/jsx"
)

const (
	// ComponentExt is the extension of component, page and App files
	ComponentExt = ".jsx"

	// StyleExt is the extension of per-component stylesheets
	StyleExt = ".css"
)

// IndexHTML is the static entry point; it never depends on the input
const IndexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>React App</title>
</head>
<body>
  <div id="root"></div>
</body>
</html>`

// ComponentFile wraps rendered markup in a component module. In external
// style mode the module imports its own stylesheet first.
func ComponentFile(name, markup string, inlineStyles bool) string {
	imports := ""
	if !inlineStyles {
		imports = fmt.Sprintf("import './%s%s';\n", name, StyleExt)
	}

	lines := []string{
		imports,
		fmt.Sprintf("export default function %s() {", name),
		" return (",
		jsx.Indent(markup, 4),
		" );",
		"}",
	}

	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// PageFile composes already emitted components into a page module
func PageFile(label string, components []string) string {
	lines := make([]string, 0, len(components)+8)
	tags := make([]string, 0, len(components))
	for _, name := range components {
		lines = append(lines, fmt.Sprintf("import %s from '../components/%s';", name, name))
		tags = append(tags, fmt.Sprintf("<%s />", name))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("export default function %s() {", label),
		" return (",
		"  <div>",
		jsx.Indent(strings.Join(tags, "\n"), 6),
		"  </div>",
		" );",
		"}",
	)
	return strings.Join(lines, "\n")
}

// RouteDecl is one route of the App router
type RouteDecl struct {
	Label string
	Path  string
}

// Routes returns the route declarations for labels, in order
func Routes(labels []string) []RouteDecl {
	routes := make([]RouteDecl, 0, len(labels))
	for _, label := range labels {
		routes = append(routes, RouteDecl{Label: label, Path: "/" + strings.ToLower(label)})
	}
	return routes
}

var appTemplate = template.Must(template.New("app").Parse(`import {
  BrowserRouter as Router,
  Route,
  Routes,
} from 'react-router-dom';
{{- range .Routes }}
import {{ .Label }} from './pages/{{ .Label }}';
{{- end }}

export default function App() {
  return (
    <Router>
      <Routes>
{{ .Body }}
      </Routes>
    </Router>
  );
}`))

// AppFile renders the root application module with one route per label
func AppFile(labels []string) (string, error) {
	routes := Routes(labels)

	decls := make([]string, 0, len(routes))
	for _, route := range routes {
		decls = append(decls, fmt.Sprintf(`<Route path="%s" element={<%s />} />`, route.Path, route.Label))
	}

	var buf bytes.Buffer
	err := appTemplate.Execute(&buf, map[string]any{
		"Routes": routes,
		"Body":   jsx.Indent(strings.Join(decls, "\n"), 8),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render App: %w", err)
	}
	return buf.String(), nil
}
