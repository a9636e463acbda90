// Package emitter writes a React project (components, pages, App router and
// index.html) from a UI description.
package emitter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/recera/reactgen/pkg/jsx"
	"github.com/recera/reactgen/pkg/tree"
)

// DefaultOutputRoot is used when no output directory is configured
const DefaultOutputRoot = "react_app"

const (
	componentsDir = "components"
	pagesDir      = "pages"
	appFileName   = "App" + ComponentExt
	indexFileName = "index.html"
)

// Options configures a generation run
type Options struct {
	OutputRoot    string
	InlineStyles  bool
	CamelCaseKeys bool
	Strict        bool
	MaxDepth      int

	// FS receives the output; nil means the OS filesystem
	FS FileSystem
}

// Report summarizes a generation run
type Report struct {
	OutputRoot string   `json:"outputRoot"`
	Files      []string `json:"files"`
	Pages      int      `json:"pages"`
	Components int      `json:"components"`

	// DuplicateRoutes lists route paths declared by more than one page.
	// They are still emitted; the last page file written wins.
	DuplicateRoutes []string `json:"duplicateRoutes,omitempty"`
}

// Generator runs the description -> files pipeline
type Generator struct {
	opts     Options
	fs       FileSystem
	renderer *jsx.Renderer
	report   *Report
}

// New creates a generator
func New(opts Options) *Generator {
	if opts.OutputRoot == "" {
		opts.OutputRoot = DefaultOutputRoot
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = tree.DefaultMaxDepth
	}
	fs := opts.FS
	if fs == nil {
		fs = NewOSFileSystem()
	}

	return &Generator{
		opts: opts,
		fs:   fs,
		renderer: jsx.NewRenderer(jsx.Options{
			InlineStyles:  opts.InlineStyles,
			CamelCaseKeys: opts.CamelCaseKeys,
			Strict:        opts.Strict,
			MaxDepth:      opts.MaxDepth,
		}),
	}
}

// Transpile generates the project for doc into outputRoot on disk
func Transpile(doc *tree.Document, outputRoot string, useInlineStyles bool) error {
	_, err := New(Options{OutputRoot: outputRoot, InlineStyles: useInlineStyles}).Generate(doc)
	return err
}

// Generate emits every page (and its components), then App.jsx and
// index.html. Shape errors are reported before anything is written; an I/O
// error aborts the run and leaves already written files in place.
func (g *Generator) Generate(doc *tree.Document) (*Report, error) {
	if doc == nil {
		doc = &tree.Document{}
	}
	if err := tree.Check(doc, g.opts.MaxDepth); err != nil {
		return nil, err
	}

	g.report = &Report{OutputRoot: g.opts.OutputRoot}

	labels := make([]string, 0, len(doc.Pages))
	for i := range doc.Pages {
		if err := g.emitPage(&doc.Pages[i], tree.PagePath(i)); err != nil {
			return g.report, err
		}
		labels = append(labels, doc.Pages[i].Label)
	}

	if err := g.emitApp(labels); err != nil {
		return g.report, err
	}
	if err := g.writeFile(filepath.Join(g.opts.OutputRoot, indexFileName), IndexHTML); err != nil {
		return g.report, err
	}

	g.report.DuplicateRoutes = duplicateRoutes(labels)
	return g.report, nil
}

// emitComponent writes components/{name}.jsx and, in external style mode,
// components/{name}.css
func (g *Generator) emitComponent(node *tree.ComponentNode, path string) error {
	if node.Name == "" {
		return &tree.MissingFieldError{Field: "name", Path: path}
	}

	markup, err := g.renderer.Render(node, path)
	if err != nil {
		return err
	}

	dir := filepath.Join(g.opts.OutputRoot, componentsDir)
	source := ComponentFile(node.Name, markup, g.opts.InlineStyles)
	if err := g.writeFile(filepath.Join(dir, node.Name+ComponentExt), source); err != nil {
		return err
	}

	if !g.opts.InlineStyles {
		css := jsx.Stylesheet(node.Name, node.Styles)
		if err := g.writeFile(filepath.Join(dir, node.Name+StyleExt), css); err != nil {
			return err
		}
	}

	g.report.Components++
	return nil
}

// emitPage emits the page's components, then pages/{label}.jsx
func (g *Generator) emitPage(page *tree.PageNode, path string) error {
	if page.Label == "" {
		return &tree.MissingFieldError{Field: "label", Path: path}
	}

	names := make([]string, 0, len(page.Contents))
	for i := range page.Contents {
		node := &page.Contents[i]
		if err := g.emitComponent(node, tree.ContentPath(path, i)); err != nil {
			return err
		}
		names = append(names, node.Name)
	}

	source := PageFile(page.Label, names)
	target := filepath.Join(g.opts.OutputRoot, pagesDir, page.Label+ComponentExt)
	if err := g.writeFile(target, source); err != nil {
		return err
	}

	g.report.Pages++
	return nil
}

// emitApp writes App.jsx next to index.html, not under pages/
func (g *Generator) emitApp(labels []string) error {
	source, err := AppFile(labels)
	if err != nil {
		return err
	}
	return g.writeFile(filepath.Join(g.opts.OutputRoot, appFileName), source)
}

func (g *Generator) writeFile(path, content string) error {
	if err := g.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := g.fs.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	g.report.Files = append(g.report.Files, path)
	return nil
}

func duplicateRoutes(labels []string) []string {
	seen := make(map[string]int)
	var dups []string
	for _, route := range Routes(labels) {
		seen[route.Path]++
		if seen[route.Path] == 2 {
			dups = append(dups, route.Path)
		}
	}
	return dups
}

// String lists the report in a compact, log-friendly form
func (r *Report) String() string {
	return fmt.Sprintf("%d pages, %d components, %d files in %s: %s",
		r.Pages, r.Components, len(r.Files), r.OutputRoot, strings.Join(r.Files, ", "))
}
