package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/recera/reactgen/cmd/reactgen/internal/config"
	"github.com/recera/reactgen/pkg/emitter"
	"github.com/recera/reactgen/pkg/tree"
)

// RunInitTUI starts the interactive TUI for project initialization
func RunInitTUI(directory string) (InitConfig, *emitter.Report, error) {
	// Check if we're in a TTY
	if !isatty() {
		return InitConfig{}, nil, fmt.Errorf("not running in a terminal, use --no-interactive flag")
	}

	model := NewModel(directory)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return InitConfig{}, nil, fmt.Errorf("TUI error: %w", err)
	}

	m := finalModel.(Model)
	if m.Cancelled() {
		return InitConfig{}, nil, fmt.Errorf("project initialization cancelled")
	}
	if m.Err() != nil {
		return m.GetConfig(), nil, m.Err()
	}

	return m.GetConfig(), m.report, nil
}

// Scaffold writes a starter UI description and reactgen.yaml into the
// project directory, then runs the first generation
func Scaffold(opts InitConfig) (*emitter.Report, error) {
	dir := opts.Directory
	if dir == "" {
		dir = "."
	}
	if len(opts.Pages) == 0 {
		return nil, fmt.Errorf("at least one page is required")
	}
	for _, label := range opts.Pages {
		if err := ValidateLabel(label); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	cfg := config.DefaultConfig()
	if opts.Input != "" {
		cfg.Input = opts.Input
	}
	if opts.OutputRoot != "" {
		cfg.Output.Root = opts.OutputRoot
	}
	cfg.Styles.Inline = opts.InlineStyles
	cfg.Strict = opts.Strict

	inputPath := cfg.InputPath(dir)
	if _, err := os.Stat(inputPath); err == nil {
		return nil, fmt.Errorf("%s already exists", inputPath)
	}
	if existing := config.Find(dir); existing != "" {
		return nil, fmt.Errorf("%s already exists", existing)
	}

	doc := StarterDocument(opts.Pages)
	data, err := EncodeDocument(doc, tree.FormatFromPath(inputPath))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(inputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(inputPath), err)
	}
	if err := os.WriteFile(inputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", inputPath, err)
	}

	if err := config.Save(cfg, dir); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return emitter.New(cfg.GeneratorOptions(dir)).Generate(doc)
}

// StarterDocument returns a small description with one content component
// per page
func StarterDocument(pages []string) *tree.Document {
	doc := &tree.Document{}
	for _, label := range pages {
		var heading tree.Attributes
		heading.Set("class", "title")
		heading.Set("id", label+"-title")

		doc.Pages = append(doc.Pages, tree.PageNode{
			Label: label,
			Contents: []tree.ComponentNode{
				{
					Type:   "section",
					Name:   label + "Content",
					Styles: []string{"padding: 16px", "display: flex", "flex-direction: column"},
					Children: []tree.ComponentNode{
						{Type: "h1", Attributes: heading},
						{Type: "p"},
					},
				},
			},
		})
	}
	return doc
}

// EncodeDocument serializes doc as JSON or YAML
func EncodeDocument(doc *tree.Document, format tree.Format) ([]byte, error) {
	switch format {
	case tree.FormatYAML:
		return yaml.Marshal(doc)
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// isatty checks if we're running in a terminal
func isatty() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
