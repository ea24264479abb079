package project

import (
	"context"

	"github.com/firefly-engineering/scaffold/internal/errors"
	"github.com/firefly-engineering/scaffold/internal/history"
)

// CreateResult describes what Create did.
type CreateResult struct {
	Name string
	Path string

	// EnvRequested is set when an environment was asked for.
	EnvRequested bool

	// Environment is set when the bootstrap succeeded.
	Environment *Environment

	// EnvErr holds the bootstrap failure. The project directory is kept.
	EnvErr error
}

// Partial reports whether the directory was created but the requested
// environment was not.
func (r *CreateResult) Partial() bool {
	return r.EnvErr != nil
}

// Create makes a new project directory and, when withEnv is set,
// bootstraps a virtual environment inside it.
func (m *Manager) Create(ctx context.Context, name string, withEnv bool) (*CreateResult, error) {
	path, err := m.ProjectPath(name)
	if err != nil {
		return nil, err
	}

	if m.fs.Exists(path) {
		m.log.Debug("project already exists", "name", name, "path", path)
		return nil, errors.ProjectExists(name)
	}

	m.log.Debug("creating project", "name", name, "path", path, "env", withEnv)

	if err := m.fs.MkdirAll(path, 0755); err != nil {
		m.log.Error("failed to create project folder", "path", path, "error", err)
		return nil, errors.FilesystemError("creating project folder", err)
	}

	m.console.Success("Created project folder: %s", path)
	m.record(history.EventCreate, name, "")

	result := &CreateResult{Name: name, Path: path, EnvRequested: withEnv}
	if !withEnv {
		return result, nil
	}

	env, err := m.BootstrapEnvironment(ctx, path)
	if err != nil {
		m.log.Warn("environment bootstrap failed, keeping project folder", "path", path, "error", err)
		m.console.Error("%v", err)
		m.record(history.EventError, name, err.Error())
		result.EnvErr = err
		return result, nil
	}

	m.record(history.EventEnvironment, name, m.cfg.PythonSelector())
	result.Environment = env
	return result, nil
}
