// Package tui provides the optional full-screen branch picker used by
// checkout --tui. The default numbered menu lives in the output package.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"branchkit.dev/branchkit/internal/output"
)

// ErrCancelled is returned when the user dismisses the picker without
// selecting a branch.
var ErrCancelled = errors.New("cancelled")

// pickerModel is a branch selection prompt model with filtering
type pickerModel struct {
	prompt   string
	choices  []string
	filtered []string
	filter   textinput.Model
	cursor   int
	selected string
	done     bool
	err      error
}

func newPickerModel(prompt string, choices []string) pickerModel {
	filter := textinput.New()
	filter.Prompt = "Filter: "
	filter.Focus()

	m := pickerModel{
		prompt:  prompt,
		choices: choices,
		filter:  filter,
	}
	m.updateFiltered()
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if len(m.filtered) > 0 && m.cursor >= 0 && m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor]
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCancelled
			m.done = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.filtered) - 1
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.updateFiltered()
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m, cmd
}

func (m *pickerModel) updateFiltered() {
	query := strings.ToLower(m.filter.Value())
	if query == "" {
		m.filtered = m.choices
		return
	}

	m.filtered = []string{}
	for _, choice := range m.choices {
		if strings.Contains(strings.ToLower(choice), query) {
			m.filtered = append(m.filtered, choice)
		}
	}
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.prompt + "\n")
	b.WriteString(m.filter.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString("No branches match the filter.\n")
	} else {
		for i, choice := range m.filtered {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, choice))
		}
	}

	b.WriteString("\n" + output.ColorDim("(Press Enter to select, Esc to cancel, type to filter)"))

	style := lipgloss.NewStyle().Margin(1, 0)
	return style.Render(b.String())
}

// SelectBranch runs the interactive picker and returns the chosen branch.
// Dismissing the picker returns ErrCancelled.
func SelectBranch(prompt string, choices []string) (string, error) {
	m := newPickerModel(prompt, choices)

	model, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}

	result, ok := model.(pickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if result.err != nil {
		return "", result.err
	}
	return result.selected, nil
}
