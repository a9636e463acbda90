package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/recera/reactgen/pkg/emitter"
)

// Style definitions
var (
	// Colors
	primaryColor   = lipgloss.Color("#61dafb") // React cyan
	secondaryColor = lipgloss.Color("#64748b") // Gray
	successColor   = lipgloss.Color("#10b981") // Green
	warningColor   = lipgloss.Color("#f59e0b") // Yellow
	errorColor     = lipgloss.Color("#ef4444") // Red
	mutedColor     = lipgloss.Color("#94a3b8") // Muted gray

	// Base styles
	baseStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

// place centers content in the terminal
func (m Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(
		m.width,
		m.height-3,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// renderBasics renders the description, output and pages form
func (m Model) renderBasics() string {
	var header []string
	if banner := BannerFor(m.width, m.height); banner != nil {
		header = append(header, selectedStyle.Render(strings.Join(banner[:len(banner)-1], "\n")))
		header = append(header, mutedStyle.Render(banner[len(banner)-1]), "")
	}

	title := titleStyle.Render("📝 Project Basics")
	subtitle := subtitleStyle.Render("Where the description lives and what it should contain")

	labels := []string{
		"UI description file:",
		"Output directory:",
		"Pages (comma separated):",
	}

	var fields []string
	for i, label := range labels {
		if i == m.currentInput {
			label = selectedStyle.Render("▶ " + label)
		} else {
			label = normalStyle.Render("  " + label)
		}
		fields = append(fields, label, "  "+m.textInputs[i].View(), "")
	}

	fieldsBox := boxStyle.Render(strings.TrimRight(strings.Join(fields, "\n"), "\n"))

	var errorMsg string
	if m.errorMessage != "" {
		errorMsg = "\n" + errorStyle.Render("✗ "+m.errorMessage)
	}

	help := helpStyle.Render("\nTab/↓: Next field • ↑: Previous • Enter: Continue")

	parts := append(header, title, subtitle, fieldsBox, errorMsg, help)
	return m.place(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderStyling renders the style mode selector
func (m Model) renderStyling() string {
	title := titleStyle.Render("🎨 Styling")
	subtitle := subtitleStyle.Render("How component styles are attached")

	modes := []struct {
		inline      bool
		label       string
		description string
	}{
		{false, "Stylesheets", "One .css file per component, linked by class name"},
		{true, "Inline", "Styles attached to each element's style attribute"},
	}

	var fields []string
	for i, mode := range modes {
		radio := "○"
		if m.config.InlineStyles == mode.inline {
			radio = "●"
		}
		label := fmt.Sprintf("%s %s - %s", radio, mode.label, mutedStyle.Render(mode.description))
		if m.selectedItem == i {
			label = selectedStyle.Render("▶ " + label)
		} else {
			label = normalStyle.Render("  " + label)
		}
		fields = append(fields, label)
	}

	strictCheck := "☐"
	if m.config.Strict {
		strictCheck = "☑"
	}
	strictLabel := fmt.Sprintf("%s Strict mode (reject malformed styles)", strictCheck)
	if m.selectedItem == 2 {
		strictLabel = selectedStyle.Render("▶ " + strictLabel)
	} else {
		strictLabel = normalStyle.Render("  " + strictLabel)
	}
	fields = append(fields, "\n"+strictLabel)

	fieldsBox := boxStyle.Render(strings.Join(fields, "\n"))

	help := helpStyle.Render("\n↑/↓: Navigate • Space: Select • Enter: Continue • Esc: Back")

	return m.place(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		fieldsBox,
		help,
	))
}

// renderSummary renders the configuration summary
func (m Model) renderSummary() string {
	title := titleStyle.Render("📋 Summary")
	subtitle := subtitleStyle.Render("Review the project before it is written")

	config := m.GetConfig()

	styles := "Stylesheets"
	if config.InlineStyles {
		styles = "Inline"
	}

	summary := []string{
		fmt.Sprintf("Directory:    %s", selectedStyle.Render(displayDir(config.Directory))),
		fmt.Sprintf("Description:  %s", normalStyle.Render(config.Input)),
		fmt.Sprintf("Output:       %s", normalStyle.Render(config.OutputRoot)),
		fmt.Sprintf("Pages:        %s", normalStyle.Render(strings.Join(config.Pages, ", "))),
		fmt.Sprintf("Styles:       %s", normalStyle.Render(styles)),
	}
	if config.Strict {
		summary = append(summary, fmt.Sprintf("Strict mode:  %s", successStyle.Render("Enabled")))
	}

	summaryBox := boxStyle.Render(strings.Join(summary, "\n"))

	structureTitle := normalStyle.Render("\n📁 Generated Structure:")
	structureBox := mutedStyle.Render(ProjectStructure(config))

	confirm := selectedStyle.Render("\n✨ Press Enter to create the project")
	back := helpStyle.Render("Press Esc to go back and modify")

	return m.place(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		summaryBox,
		structureTitle,
		structureBox,
		confirm,
		back,
	))
}

// renderExecution renders the scaffolding progress
func (m Model) renderExecution() string {
	title := titleStyle.Render("🚀 Creating Your Project")
	line := fmt.Sprintf("%s  %s", m.spinner.View(), normalStyle.Render("Writing description, config and first build..."))

	return m.place(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		boxStyle.Render(line),
	))
}

// renderComplete renders the completion or failure screen
func (m Model) renderComplete() string {
	if m.err != nil {
		title := errorStyle.Render("❌ Project Creation Failed")
		detail := normalStyle.Render("\n" + m.err.Error())
		footer := helpStyle.Render("\n\nPress Enter to exit")
		return m.place(lipgloss.JoinVertical(lipgloss.Left, title, detail, footer))
	}

	title := titleStyle.Render("✨ Project Created Successfully!")
	config := m.GetConfig()

	var report string
	if m.report != nil {
		report = RenderReport(m.report, 0)
	}

	nextSteps := normalStyle.Render("\n📚 Next Steps:") + mutedStyle.Render(fmt.Sprintf(`
   edit %s
   reactgen watch
`, config.Input))

	footer := selectedStyle.Render("\nPress Enter to exit")

	return m.place(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		report,
		nextSteps,
		footer,
	))
}

// renderFooter renders the footer with context-sensitive keybindings
func (m Model) renderFooter() string {
	var keys []string

	switch m.step {
	case StepBasics:
		keys = []string{"Tab: Next", "Enter: Continue", "Ctrl+C: Quit"}
	case StepStyling:
		keys = []string{"↑/↓: Navigate", "Space: Select", "Enter: Continue", "Esc: Back"}
	case StepSummary:
		keys = []string{"Enter: Create", "Esc: Back", "Ctrl+C: Quit"}
	case StepExecuting:
		keys = []string{"Creating project..."}
	case StepComplete:
		keys = []string{"Enter: Exit"}
	}

	return footerStyle.Render(strings.Join(keys, " • "))
}

// ProjectStructure returns a tree view of the files a generation run
// will write for config
func ProjectStructure(config InitConfig) string {
	root := config.OutputRoot
	if root == "" {
		root = emitter.DefaultOutputRoot
	}

	var b strings.Builder
	b.WriteString(root + "/\n")
	b.WriteString("├── App.jsx\n")
	b.WriteString("├── components/\n")
	for _, label := range config.Pages {
		fmt.Fprintf(&b, "│   ├── %sContent%s\n", label, emitter.ComponentExt)
		if !config.InlineStyles {
			fmt.Fprintf(&b, "│   ├── %sContent%s\n", label, emitter.StyleExt)
		}
	}
	b.WriteString("├── pages/\n")
	for _, label := range config.Pages {
		fmt.Fprintf(&b, "│   ├── %s%s\n", label, emitter.ComponentExt)
	}
	b.WriteString("└── index.html")
	return b.String()
}

// RenderReport formats a generation report for the terminal. elapsed is
// omitted when zero.
func RenderReport(report *emitter.Report, elapsed time.Duration) string {
	header := fmt.Sprintf("%d pages • %d components • %d files",
		report.Pages, report.Components, len(report.Files))
	if elapsed > 0 {
		header += " • " + elapsed.Round(time.Millisecond).String()
	}

	lines := []string{successStyle.Render("✅ " + header), ""}
	for _, file := range report.Files {
		rel, err := filepath.Rel(report.OutputRoot, file)
		if err != nil {
			rel = file
		}
		lines = append(lines, mutedStyle.Render("  "+filepath.ToSlash(rel)))
	}

	for _, route := range report.DuplicateRoutes {
		lines = append(lines, "", warningStyle.Render(fmt.Sprintf("⚠️  route %s is declared by more than one page", route)))
	}

	title := selectedStyle.Render("📦 " + report.OutputRoot)
	return lipgloss.JoinVertical(lipgloss.Left, title, boxStyle.Render(strings.Join(lines, "\n")))
}

// RenderError formats a failure for the terminal
func RenderError(err error) string {
	return errorStyle.Render("❌ " + err.Error())
}

func displayDir(dir string) string {
	if dir == "" || dir == "." {
		return "current directory"
	}
	return dir
}
