package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// TeaPrompter asks questions with a Bubble Tea text input.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter creates a TeaPrompter reading keys from in and drawing to out.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

func (p *TeaPrompter) Confirm(question string) (bool, error) {
	program := tea.NewProgram(newConfirmModel(question), tea.WithInput(p.in), tea.WithOutput(p.out))

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	m := final.(confirmModel)
	if m.aborted {
		return false, nil
	}
	return IsAffirmative(m.answer), nil
}

// confirmModel collects one free-text answer.
type confirmModel struct {
	question string
	input    textinput.Model
	answer   string
	done     bool
	aborted  bool
}

func newConfirmModel(question string) confirmModel {
	ti := textinput.New()
	ti.Placeholder = "N"
	ti.Prompt = ""
	ti.CharLimit = 16
	ti.Width = 8
	ti.Focus()

	return confirmModel{question: question, input: ti}
}

func (m confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.answer = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m confirmModel) View() string {
	header := questionStyle.Render(m.question) + " " + hintStyle.Render(Suffix)
	if m.done {
		answer := m.answer
		if m.aborted || answer == "" {
			answer = "n"
		}
		return header + answerStyle.Render(answer) + "\n"
	}
	return header + m.input.View()
}
