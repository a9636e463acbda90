package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/recera/reactgen/cmd/reactgen/internal/config"
	"github.com/recera/reactgen/pkg/emitter"
	"github.com/recera/reactgen/pkg/tree"
)

// projectFlags are shared by every command that runs a generation
type projectFlags struct {
	cwd           string
	configPath    string
	input         string
	out           string
	inlineStyles  bool
	camelCaseKeys bool
	strict        bool
	maxDepth      int
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.cwd, "cwd", "", "Project directory (defaults to current)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (defaults to reactgen.yaml in the project)")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "UI description file (JSON or YAML)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output directory for the generated project")
	cmd.Flags().BoolVar(&f.inlineStyles, "inline-styles", false, "Attach styles inline instead of writing stylesheets")
	cmd.Flags().BoolVar(&f.camelCaseKeys, "camel-case-keys", false, "Convert inline style keys to camelCase")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Validate against the schema and reject malformed style rules")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", tree.DefaultMaxDepth, "Maximum component nesting depth")
}

// project is a resolved project directory and its effective config
type project struct {
	dir        string
	configFile string
	config     *config.Config
}

// resolve loads the project config and applies the flags the user set.
// Flags left at their defaults never override the config file.
func (f *projectFlags) resolve(cmd *cobra.Command) (*project, error) {
	dir := f.cwd
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	var (
		cfg        *config.Config
		configFile string
		err        error
	)
	if f.configPath != "" {
		configFile = f.configPath
		if !filepath.IsAbs(configFile) {
			configFile = filepath.Join(dir, configFile)
		}
		cfg, err = config.LoadFile(configFile)
	} else {
		configFile = config.Find(dir)
		cfg, err = config.Load(dir)
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = f.input
	}
	if flags.Changed("out") {
		cfg.Output.Root = f.out
	}
	if flags.Changed("inline-styles") {
		cfg.Styles.Inline = f.inlineStyles
	}
	if flags.Changed("camel-case-keys") {
		cfg.Styles.CamelCaseKeys = f.camelCaseKeys
	}
	if flags.Changed("strict") {
		cfg.Strict = f.strict
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &project{dir: dir, configFile: configFile, config: cfg}, nil
}

// inputPath is the description file the project generates from
func (p *project) inputPath() string {
	return p.config.InputPath(p.dir)
}

// load reads and decodes the description. Strict projects are checked
// against the schema first.
func (p *project) load() (*tree.Document, error) {
	path := p.inputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}

	format := tree.FormatFromPath(path)
	if p.config.Strict {
		if err := tree.ValidateStrict(data, format); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
	}

	doc, err := tree.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// generate runs the whole pipeline into fs (nil writes to disk)
func (p *project) generate(fs emitter.FileSystem) (*emitter.Report, error) {
	doc, err := p.load()
	if err != nil {
		return nil, err
	}

	opts := p.config.GeneratorOptions(p.dir)
	opts.FS = fs
	return emitter.New(opts).Generate(doc)
}
