package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/recera/reactgen/pkg/emitter"
	"github.com/recera/reactgen/pkg/tree"
)

// FileNames are the config files looked up in a project, in order
var FileNames = []string{"reactgen.yaml", "reactgen.yml", "reactgen.json"}

// Config represents the reactgen.yaml configuration
type Config struct {
	// Path to the UI description, relative to the project
	Input string `yaml:"input,omitempty"`

	// Output configuration
	Output *OutputConfig `yaml:"output,omitempty"`

	// Styling configuration
	Styles *StylesConfig `yaml:"styles,omitempty"`

	// Reject malformed style rules and schema violations
	Strict bool `yaml:"strict,omitempty"`

	// Maximum component nesting depth
	MaxDepth int `yaml:"maxDepth,omitempty"`

	// Watch mode configuration
	Watch *WatchConfig `yaml:"watch,omitempty"`
}

// OutputConfig contains output-related configuration
type OutputConfig struct {
	// Directory receiving the generated project
	Root string `yaml:"root,omitempty"`
}

// StylesConfig contains styling-related configuration
type StylesConfig struct {
	// Attach styles inline instead of writing a stylesheet per component
	Inline bool `yaml:"inline"`

	// Convert inline style keys to DOM names (background-color -> backgroundColor)
	CamelCaseKeys bool `yaml:"camelCaseKeys,omitempty"`
}

// WatchConfig contains watch mode configuration
type WatchConfig struct {
	// Quiet period before regenerating after a change
	Debounce time.Duration `yaml:"debounce,omitempty"`

	// Address of the live reload WebSocket server; empty disables it
	ReloadAddr string `yaml:"reloadAddr,omitempty"`
}

// Find returns the config file in projectPath, or "" when there is none
func Find(projectPath string) string {
	for _, name := range FileNames {
		path := filepath.Join(projectPath, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load loads configuration from the project's config file
func Load(projectPath string) (*Config, error) {
	configPath := Find(projectPath)
	if configPath == "" {
		// Return default config if no file exists
		return DefaultConfig(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from an explicit path. JSON files decode
// through the same YAML decoder.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(configPath), err)
	}

	// Apply defaults for missing values
	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filepath.Base(configPath), err)
	}

	return &config, nil
}

// Save saves configuration to reactgen.yaml
func Save(config *Config, projectPath string) error {
	configPath := filepath.Join(projectPath, FileNames[0])

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Input: "app.json",
		Output: &OutputConfig{
			Root: emitter.DefaultOutputRoot,
		},
		Styles: &StylesConfig{
			Inline:        false,
			CamelCaseKeys: false,
		},
		Strict:   false,
		MaxDepth: tree.DefaultMaxDepth,
		Watch: &WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
	}
}

// applyDefaults applies default values to missing configuration
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Input == "" {
		config.Input = defaults.Input
	}

	if config.Output == nil {
		config.Output = defaults.Output
	} else if config.Output.Root == "" {
		config.Output.Root = defaults.Output.Root
	}

	if config.Styles == nil {
		config.Styles = defaults.Styles
	}

	if config.MaxDepth == 0 {
		config.MaxDepth = defaults.MaxDepth
	}

	if config.Watch == nil {
		config.Watch = defaults.Watch
	} else if config.Watch.Debounce == 0 {
		config.Watch.Debounce = defaults.Watch.Debounce
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must not be negative, got %d", c.MaxDepth)
	}
	if c.Watch != nil && c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// InputPath resolves the description path against the project directory
func (c *Config) InputPath(projectPath string) string {
	if filepath.IsAbs(c.Input) {
		return c.Input
	}
	return filepath.Join(projectPath, c.Input)
}

// OutputRoot resolves the output directory against the project directory
func (c *Config) OutputRoot(projectPath string) string {
	if filepath.IsAbs(c.Output.Root) {
		return c.Output.Root
	}
	return filepath.Join(projectPath, c.Output.Root)
}

// GeneratorOptions returns emitter options for a run rooted at projectPath
func (c *Config) GeneratorOptions(projectPath string) emitter.Options {
	return emitter.Options{
		OutputRoot:    c.OutputRoot(projectPath),
		InlineStyles:  c.Styles.Inline,
		CamelCaseKeys: c.Styles.CamelCaseKeys,
		Strict:        c.Strict,
		MaxDepth:      c.MaxDepth,
	}
}
