package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recera/reactgen/cmd/reactgen/internal/config"
	"github.com/recera/reactgen/pkg/emitter"
	"github.com/recera/reactgen/pkg/tree"
)

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestModel_WalksThroughSteps(t *testing.T) {
	m := NewModel("site")
	assert.Equal(t, StepBasics, m.step)

	m = press(t, m, enterKey)
	require.Equal(t, StepStyling, m.step)

	// Select inline styles, then toggle strict mode
	m = press(t, m, downKey, spaceKey, downKey, spaceKey)
	assert.True(t, m.config.InlineStyles)
	assert.True(t, m.config.Strict)

	m = press(t, m, enterKey)
	require.Equal(t, StepSummary, m.step)

	m = press(t, m, escKey)
	assert.Equal(t, StepStyling, m.step)

	cfg := m.GetConfig()
	assert.Equal(t, "site", cfg.Directory)
	assert.Equal(t, "app.json", cfg.Input)
	assert.Equal(t, emitter.DefaultOutputRoot, cfg.OutputRoot)
	assert.Equal(t, []string{"Home", "About"}, cfg.Pages)
}

func TestModel_RejectsInvalidPages(t *testing.T) {
	m := NewModel(".")
	m = press(t, m, tabKey, tabKey)
	require.Equal(t, inputPages, m.currentInput)

	m.textInputs[inputPages].SetValue("Home, 2nd-page")
	m = press(t, m, enterKey)

	assert.Equal(t, StepBasics, m.step)
	assert.Contains(t, m.errorMessage, "2nd-page")

	m.textInputs[inputPages].SetValue(" , ")
	m = press(t, m, enterKey)
	assert.Equal(t, StepBasics, m.step)
	assert.Contains(t, m.errorMessage, "at least one page")
}

func TestModel_ScaffoldResult(t *testing.T) {
	m := NewModel(".")
	report := &emitter.Report{OutputRoot: "react_app", Pages: 2}
	m.scaffold = func(InitConfig) (*emitter.Report, error) { return report, nil }

	m = press(t, m, enterKey, enterKey)
	require.Equal(t, StepSummary, m.step)

	next, cmd := m.Update(enterKey)
	m = next.(Model)
	require.Equal(t, StepExecuting, m.step)
	require.NotNil(t, cmd)

	// Ctrl+C is ignored while files are being written
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.False(t, m.quitting)

	next, _ = m.Update(scaffoldDoneMsg{report: report})
	m = next.(Model)
	assert.Equal(t, StepComplete, m.step)
	assert.Same(t, report, m.report)
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "Project Created")

	failed := NewModel(".")
	next, _ = failed.Update(scaffoldErrorMsg{err: errors.New("disk full")})
	failed = next.(Model)
	assert.EqualError(t, failed.Err(), "disk full")
	assert.Contains(t, failed.View(), "disk full")
}

func TestModel_Cancel(t *testing.T) {
	m := press(t, NewModel("."), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.Cancelled())
	assert.Empty(t, m.View())
}

func TestParsePages(t *testing.T) {
	assert.Equal(t, []string{"Home", "About", "Contact"}, ParsePages(" Home,About , Contact,"))
	assert.Nil(t, ParsePages(""))
}

func TestValidateLabel(t *testing.T) {
	valid := []string{"Home", "About_Us", "Page2"}
	for _, label := range valid {
		assert.NoError(t, ValidateLabel(label), label)
	}

	invalid := []string{"", "2Home", "about-us", "Home Page"}
	for _, label := range invalid {
		assert.Error(t, ValidateLabel(label), label)
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()

	report, err := Scaffold(InitConfig{
		Directory:    dir,
		Input:        "ui.yaml",
		OutputRoot:   "web",
		Pages:        []string{"Home", "About"},
		InlineStyles: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Pages)
	assert.Equal(t, 2, report.Components)

	// The description round-trips through the decoder
	doc, err := tree.Load(filepath.Join(dir, "ui.yaml"))
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	assert.Equal(t, "HomeContent", doc.Pages[0].Contents[0].Name)
	class, ok := doc.Pages[0].Contents[0].Children[0].Attributes.Get("class")
	assert.True(t, ok)
	assert.Equal(t, "title", class)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ui.yaml", cfg.Input)
	assert.Equal(t, "web", cfg.Output.Root)
	assert.True(t, cfg.Styles.Inline)

	home, err := os.ReadFile(filepath.Join(dir, "web", "components", "HomeContent.jsx"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(home), "style={"))

	// A second run refuses to overwrite the description
	_, err = Scaffold(InitConfig{Directory: dir, Input: "ui.yaml", Pages: []string{"Home"}})
	assert.Error(t, err)
}

func TestEncodeDocument_JSON(t *testing.T) {
	data, err := EncodeDocument(StarterDocument([]string{"Home"}), tree.FormatJSON)
	require.NoError(t, err)

	doc, err := tree.Decode(data, tree.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, StarterDocument([]string{"Home"}), doc)
}

func TestProjectStructure(t *testing.T) {
	external := ProjectStructure(InitConfig{OutputRoot: "out", Pages: []string{"Home"}})
	assert.Contains(t, external, "HomeContent.css")
	assert.Contains(t, external, "pages/")

	inline := ProjectStructure(InitConfig{Pages: []string{"Home"}, InlineStyles: true})
	assert.NotContains(t, inline, ".css")
	assert.True(t, strings.HasPrefix(inline, emitter.DefaultOutputRoot+"/"))
}
