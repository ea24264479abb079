package tui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/scaffold/internal/project"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionHome
	ActionDelete
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionHome:
		return "home"
	case ActionDelete:
		return "delete"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// PickerResult holds the result of the picker
type PickerResult struct {
	Action  Action
	Project *project.Project
}

// projectItem implements list.Item for project display
type projectItem struct {
	project project.Project
}

func (i projectItem) Title() string {
	return i.project.Name
}

func (i projectItem) Description() string {
	env := "○ no environment"
	if i.project.HasEnvironment() {
		envDir := filepath.Dir(filepath.Dir(i.project.Activate))
		if rel, err := filepath.Rel(i.project.Path, envDir); err == nil {
			envDir = rel
		}
		env = "✓ " + envDir
	}
	return fmt.Sprintf("%s | %s", env, truncatePath(i.project.Path, 40))
}

func (i projectItem) FilterValue() string {
	return i.project.Name
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the project picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new project picker
func NewPicker(projects []project.Project) Model {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "scaffold - Select Project"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(projectItem); ok {
				return m.finish(ActionOpen, &item.project)
			}

		case "h", "~":
			return m.finish(ActionHome, nil)

		case "d":
			if item, ok := m.list.SelectedItem().(projectItem); ok {
				return m.finish(ActionDelete, &item.project)
			}

		case "q", "esc", "ctrl+c":
			return m.finish(ActionQuit, nil)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) finish(action Action, p *project.Project) (tea.Model, tea.Cmd) {
	m.result = PickerResult{Action: action, Project: p}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Open  [h] Home  [d] Delete  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive project picker, reading keys from in and
// rendering on out.
func RunPicker(projects []project.Project, in io.Reader, out io.Writer) (PickerResult, error) {
	if len(projects) == 0 {
		return PickerResult{Action: ActionHome}, nil
	}

	m := NewPicker(projects)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}
