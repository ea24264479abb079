package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/firefly-engineering/scaffold/internal/errors"
	"github.com/firefly-engineering/scaffold/internal/history"
)

// HomeTarget is the navigate argument that targets the projects root.
const HomeTarget = "home"

// NavigationKind tags a Navigation.
type NavigationKind int

const (
	// Cancelled means nothing should happen in the shell.
	Cancelled NavigationKind = iota
	// NavigatedHome targets the projects root itself.
	NavigatedHome
	// NavigatedExisting targets a project that already existed.
	NavigatedExisting
	// NavigatedNew targets a project created by this call.
	NavigatedNew
)

func (k NavigationKind) String() string {
	switch k {
	case NavigatedHome:
		return "home"
	case NavigatedExisting:
		return "existing"
	case NavigatedNew:
		return "created"
	default:
		return "cancelled"
	}
}

// Navigation is the outcome of Navigate.
type Navigation struct {
	Kind NavigationKind

	// Path is the directory to change into. Empty when cancelled.
	Path string

	// Activate is the activation script to source, if any.
	Activate string
}

// ExitCode returns the navigate exit code for the shell wrapper.
func (n Navigation) ExitCode() int {
	switch n.Kind {
	case NavigatedHome, NavigatedExisting:
		return errors.NavigateExisting
	case NavigatedNew:
		return errors.NavigateCreated
	default:
		return errors.NavigateCancelled
	}
}

// CreateQuestion is asked when navigating to a missing project.
func CreateQuestion(name string) string {
	return fmt.Sprintf("Project '%s' does not exist. Create it?", name)
}

// EnvironmentQuestion is asked after the operator agreed to create.
const EnvironmentQuestion = "Create a Python virtual environment?"

// Navigate resolves where the shell should go for name. "home" (any case)
// targets the root without prompting. A missing project is offered for
// creation; declining, or a failed creation, cancels.
func (m *Manager) Navigate(ctx context.Context, name string) (Navigation, error) {
	if strings.EqualFold(name, HomeTarget) {
		return Navigation{Kind: NavigatedHome, Path: m.root}, nil
	}

	path, err := m.ProjectPath(name)
	if err != nil {
		return Navigation{Kind: Cancelled}, err
	}

	if m.fs.IsDir(path) {
		nav := Navigation{Kind: NavigatedExisting, Path: path}
		if activate, ok := m.DetectEnvironment(path); ok {
			nav.Activate = activate
		}
		m.record(history.EventNavigate, name, nav.Kind.String())
		return nav, nil
	}

	create, err := m.prompter.Confirm(CreateQuestion(name))
	if err != nil {
		return Navigation{Kind: Cancelled}, err
	}
	if !create {
		m.log.Debug("navigate declined creation", "name", name)
		return Navigation{Kind: Cancelled}, nil
	}

	withEnv, err := m.prompter.Confirm(EnvironmentQuestion)
	if err != nil {
		return Navigation{Kind: Cancelled}, err
	}

	result, err := m.Create(ctx, name, withEnv)
	if err != nil {
		m.log.Warn("navigate could not create project", "name", name, "error", err)
		m.console.Error("%v", err)
		return Navigation{Kind: Cancelled}, nil
	}

	nav := Navigation{Kind: NavigatedNew, Path: result.Path}
	if result.Environment != nil {
		nav.Activate = result.Environment.Activate
	}
	m.record(history.EventNavigate, name, nav.Kind.String())
	return nav, nil
}
