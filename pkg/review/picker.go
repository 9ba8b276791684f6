// File: pkg/review/picker.go
package review

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TUIChooser selects a project from an interactive arrow-key list.
type TUIChooser struct{}

// Choose runs the picker and returns the highlighted project. Quitting the
// picker without confirming a choice is an error.
func (TUIChooser) Choose(projects []string) (string, error) {
	if len(projects) == 0 {
		return "", fmt.Errorf("no projects to choose from")
	}

	finalModel, err := tea.NewProgram(newPickerModel(projects)).Run()
	if err != nil {
		return "", fmt.Errorf("project picker failed: %w", err)
	}

	picker, ok := finalModel.(pickerModel)
	if !ok || !picker.chosen {
		return "", fmt.Errorf("project selection aborted")
	}
	return projects[picker.cursor], nil
}

// pickerModel is the Bubble Tea model behind TUIChooser.
type pickerModel struct {
	projects []string
	cursor   int
	chosen   bool
	aborted  bool
}

func newPickerModel(projects []string) pickerModel {
	return pickerModel{projects: projects}
}

func (pm pickerModel) Init() tea.Cmd {
	return nil
}

func (pm pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return pm, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		pm.aborted = true
		return pm, tea.Quit

	case "down", "j":
		if pm.cursor < len(pm.projects)-1 {
			pm.cursor++
		}
		return pm, nil

	case "up", "k":
		if pm.cursor > 0 {
			pm.cursor--
		}
		return pm, nil

	case "enter":
		pm.chosen = true
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm pickerModel) View() string {
	if pm.chosen || pm.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString("Select a project:\n\n")
	for i, project := range pm.projects {
		cursor := "  "
		if i == pm.cursor {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%d. %s\n", cursor, i+1, project)
	}
	b.WriteString("\n  ↑/k: up | ↓/j: down | enter: select | q: quit\n")

	return b.String()
}
