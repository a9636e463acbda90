package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recera/reactgen/pkg/emitter"
)

// Step represents the current step in the init flow
type Step int

const (
	StepBasics Step = iota
	StepStyling
	StepSummary
	StepExecuting
	StepComplete
)

// Text input indexes on the basics step
const (
	inputDescription = iota
	inputOutput
	inputPages
)

// InitConfig holds everything needed to scaffold a project
type InitConfig struct {
	Directory    string
	Input        string
	OutputRoot   string
	Pages        []string
	InlineStyles bool
	Strict       bool
}

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Space key.Binding
	Back  key.Binding
	Quit  key.Binding
	Tab   key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "shift+tab"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Space: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "toggle"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
}

// Messages
type scaffoldDoneMsg struct{ report *emitter.Report }
type scaffoldErrorMsg struct{ err error }

// Model represents the TUI state
type Model struct {
	width  int
	height int

	step   Step
	config InitConfig

	textInputs   []textinput.Model
	currentInput int
	selectedItem int
	spinner      spinner.Model

	// scaffold runs the project creation; swapped out in tests
	scaffold func(InitConfig) (*emitter.Report, error)

	report       *emitter.Report
	quitting     bool
	err          error
	errorMessage string
}

// NewModel creates the init model for a project directory
func NewModel(directory string) Model {
	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "app.json"
	descriptionInput.SetValue("app.json")
	descriptionInput.CharLimit = 120
	descriptionInput.Width = 40
	descriptionInput.Focus()

	outputInput := textinput.New()
	outputInput.Placeholder = emitter.DefaultOutputRoot
	outputInput.SetValue(emitter.DefaultOutputRoot)
	outputInput.CharLimit = 120
	outputInput.Width = 40

	pagesInput := textinput.New()
	pagesInput.Placeholder = "Home, About"
	pagesInput.SetValue("Home, About")
	pagesInput.CharLimit = 200
	pagesInput.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		step:       StepBasics,
		textInputs: []textinput.Model{descriptionInput, outputInput, pagesInput},
		spinner:    s,
		scaffold:   Scaffold,
		config: InitConfig{
			Directory: directory,
		},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, DefaultKeyMap.Quit) && m.step != StepExecuting {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.step {
		case StepBasics:
			if cmd, handled := m.handleBasicsKeys(msg); handled {
				return m, cmd
			}

		case StepStyling:
			cmd := m.handleStylingKeys(msg)
			return m, cmd

		case StepSummary:
			if key.Matches(msg, DefaultKeyMap.Enter) {
				m.step = StepExecuting
				return m, tea.Batch(m.spinner.Tick, m.runScaffold())
			}
			if key.Matches(msg, DefaultKeyMap.Back) {
				m.step = StepStyling
				return m, nil
			}

		case StepComplete:
			if key.Matches(msg, DefaultKeyMap.Enter) {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scaffoldDoneMsg:
		m.report = msg.report
		m.step = StepComplete
		return m, nil

	case scaffoldErrorMsg:
		m.err = msg.err
		m.step = StepComplete
		return m, nil
	}

	// Update the focused text input
	if m.step == StepBasics && m.currentInput < len(m.textInputs) {
		var cmd tea.Cmd
		m.textInputs[m.currentInput], cmd = m.textInputs[m.currentInput].Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.step {
	case StepBasics:
		content = m.renderBasics()
	case StepStyling:
		content = m.renderStyling()
	case StepSummary:
		content = m.renderSummary()
	case StepExecuting:
		content = m.renderExecution()
	case StepComplete:
		content = m.renderComplete()
	}

	return baseStyle.Render(content + "\n" + m.renderFooter())
}

// GetConfig returns the final init configuration
func (m Model) GetConfig() InitConfig {
	config := m.config
	config.Input = strings.TrimSpace(m.textInputs[inputDescription].Value())
	if config.Input == "" {
		config.Input = "app.json"
	}
	config.OutputRoot = strings.TrimSpace(m.textInputs[inputOutput].Value())
	if config.OutputRoot == "" {
		config.OutputRoot = emitter.DefaultOutputRoot
	}
	config.Pages = ParsePages(m.textInputs[inputPages].Value())
	return config
}

// Err returns the scaffolding error, if any
func (m Model) Err() error {
	return m.err
}

// Cancelled reports whether the user quit before the project was created
func (m Model) Cancelled() bool {
	return m.quitting && m.step != StepComplete
}

// ParsePages splits a comma separated list of page labels
func ParsePages(value string) []string {
	var pages []string
	for _, part := range strings.Split(value, ",") {
		if label := strings.TrimSpace(part); label != "" {
			pages = append(pages, label)
		}
	}
	return pages
}
