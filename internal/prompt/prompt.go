package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Suffix is appended to every question.
const Suffix = "(y/N): "

// Prompter asks the operator a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// IsAffirmative reports whether answer is an explicit yes.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// New returns a terminal prompter when in is a TTY, a line prompter
// otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewTeaPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads one line per question.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s %s", question, Suffix)

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	if err == io.EOF {
		// Keep the terminal tidy when input ends without a newline.
		fmt.Fprintln(p.out)
	}

	return IsAffirmative(line), nil
}

// Scripted answers questions from a fixed list and records what was asked.
// Once the answers run out every question is declined.
type Scripted struct {
	mu        sync.Mutex
	answers   []string
	Questions []string
}

// NewScripted creates a Scripted prompter.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

func (s *Scripted) Confirm(question string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Questions = append(s.Questions, question)
	if len(s.answers) == 0 {
		return false, nil
	}

	answer := s.answers[0]
	s.answers = s.answers[1:]
	return IsAffirmative(answer), nil
}

// Asked returns the number of questions asked so far.
func (s *Scripted) Asked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Questions)
}

// Always answers every question with the same answer without asking.
type Always bool

func (a Always) Confirm(string) (bool, error) {
	return bool(a), nil
}
