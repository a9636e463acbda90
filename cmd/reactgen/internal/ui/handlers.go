package ui

import (
	"fmt"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleBasicsKeys handles navigation between the text inputs. handled is
// false for keys that belong to the focused input.
func (m *Model) handleBasicsKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Tab), key.Matches(msg, DefaultKeyMap.Down):
		m.focusInput((m.currentInput + 1) % len(m.textInputs))
		return nil, true

	case key.Matches(msg, DefaultKeyMap.Up):
		m.focusInput((m.currentInput + len(m.textInputs) - 1) % len(m.textInputs))
		return nil, true

	case key.Matches(msg, DefaultKeyMap.Enter):
		config := m.GetConfig()
		if len(config.Pages) == 0 {
			m.errorMessage = "Add at least one page label."
			return nil, true
		}
		for _, label := range config.Pages {
			if err := ValidateLabel(label); err != nil {
				m.errorMessage = err.Error()
				return nil, true
			}
		}

		m.errorMessage = ""
		m.textInputs[m.currentInput].Blur()
		m.selectedItem = 0
		m.step = StepStyling
		return nil, true
	}

	return nil, false
}

func (m *Model) focusInput(i int) {
	m.textInputs[m.currentInput].Blur()
	m.currentInput = i
	m.textInputs[m.currentInput].Focus()
}

// handleStylingKeys handles the style mode selector and the strict toggle
func (m *Model) handleStylingKeys(msg tea.KeyMsg) tea.Cmd {
	// 0: external stylesheets, 1: inline styles, 2: strict toggle
	const items = 3

	switch {
	case key.Matches(msg, DefaultKeyMap.Up):
		if m.selectedItem > 0 {
			m.selectedItem--
		}

	case key.Matches(msg, DefaultKeyMap.Down), key.Matches(msg, DefaultKeyMap.Tab):
		if m.selectedItem < items-1 {
			m.selectedItem++
		}

	case key.Matches(msg, DefaultKeyMap.Space):
		switch m.selectedItem {
		case 0:
			m.config.InlineStyles = false
		case 1:
			m.config.InlineStyles = true
		case 2:
			m.config.Strict = !m.config.Strict
		}

	case key.Matches(msg, DefaultKeyMap.Enter):
		m.step = StepSummary

	case key.Matches(msg, DefaultKeyMap.Back):
		m.step = StepBasics
		m.textInputs[m.currentInput].Focus()
	}

	return nil
}

// runScaffold creates the project off the UI goroutine
func (m Model) runScaffold() tea.Cmd {
	config := m.GetConfig()
	scaffold := m.scaffold
	return func() tea.Msg {
		report, err := scaffold(config)
		if err != nil {
			return scaffoldErrorMsg{err: err}
		}
		return scaffoldDoneMsg{report: report}
	}
}

// ValidateLabel checks that a page label can be used as a component name
// and a file name
func ValidateLabel(label string) error {
	if label == "" {
		return fmt.Errorf("page label cannot be empty")
	}
	for i, ch := range label {
		if i == 0 && !unicode.IsLetter(ch) {
			return fmt.Errorf("page label %q must start with a letter", label)
		}
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' {
			return fmt.Errorf("page label %q may only contain letters, digits and underscores", label)
		}
	}
	return nil
}
