package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/scaffold/internal/config"
	"github.com/firefly-engineering/scaffold/internal/errors"
	"github.com/firefly-engineering/scaffold/internal/history"
	"github.com/firefly-engineering/scaffold/internal/logging"
	"github.com/firefly-engineering/scaffold/internal/prompt"
	"github.com/firefly-engineering/scaffold/internal/system"
)

// EventLogger records lifecycle events.
type EventLogger interface {
	LogEvent(eventType history.EventType, project, details string) error
}

// Options configures a Manager. Only Config is required.
type Options struct {
	Config   *config.Config
	FS       system.FileSystem
	Executor system.CommandExecutor
	Prompter prompt.Prompter
	Logger   *logging.Logger
	Console  *logging.Console
	History  EventLogger
}

// Manager implements the project lifecycle operations.
type Manager struct {
	root     string
	cfg      *config.Config
	fs       system.FileSystem
	exec     system.CommandExecutor
	prompter prompt.Prompter
	log      *logging.Logger
	console  *logging.Console
	history  EventLogger
}

// NewManager creates a Manager. Unset options fall back to the real OS,
// a prompter that declines everything and discarding loggers.
func NewManager(opts Options) *Manager {
	m := &Manager{
		root:     opts.Config.ProjectsDir,
		cfg:      opts.Config,
		fs:       opts.FS,
		exec:     opts.Executor,
		prompter: opts.Prompter,
		log:      opts.Logger,
		console:  opts.Console,
		history:  opts.History,
	}

	if m.fs == nil {
		m.fs = system.OSFileSystem()
	}
	if m.exec == nil {
		m.exec = system.OSExecutor()
	}
	if m.prompter == nil {
		m.prompter = prompt.NewScripted()
	}
	if m.log == nil {
		m.log = logging.NewNop()
	}
	if m.console == nil {
		m.console = logging.NewConsole(nil, nil, m.log)
	}

	return m
}

// WithPrompter returns a copy of m that asks p.
func (m *Manager) WithPrompter(p prompt.Prompter) *Manager {
	c := *m
	c.prompter = p
	return &c
}

// WithConsole returns a copy of m that reports to console.
func (m *Manager) WithConsole(console *logging.Console) *Manager {
	c := *m
	c.console = console
	return &c
}

// Root returns the projects root.
func (m *Manager) Root() string {
	return m.root
}

// EnsureRoot creates the projects root if it does not exist.
func (m *Manager) EnsureRoot() error {
	if err := m.fs.MkdirAll(m.root, 0755); err != nil {
		return errors.FilesystemError("creating projects directory", err)
	}
	return nil
}

// ProjectPath returns the directory of the named project.
// The name must be a single path segment.
func (m *Manager) ProjectPath(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(m.root, name), nil
}

// ValidateName checks that name can only refer to a direct child of the
// projects root.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ValidationError("project name cannot be empty")
	}
	if name == "." || name == ".." {
		return errors.ValidationError(fmt.Sprintf("invalid project name %q", name))
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return errors.ValidationError(fmt.Sprintf("invalid project name %q: must not contain path separators", name))
	}
	return nil
}

// record writes a history event. Failures never fail the operation.
func (m *Manager) record(eventType history.EventType, name, details string) {
	if m.history == nil {
		return
	}
	if err := m.history.LogEvent(eventType, name, details); err != nil {
		m.log.Debug("failed to record history", "event", eventType, "project", name, "error", err)
	}
}
