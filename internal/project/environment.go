package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/scaffold/internal/config"
	"github.com/firefly-engineering/scaffold/internal/errors"
)

// Environment is a bootstrapped virtual environment.
type Environment struct {
	// Dir is the environment directory, <project>/venv.
	Dir string

	// Activate is the environment's activation script.
	Activate string

	// Shim is the activation shim written at the project root.
	Shim string
}

// ActivatePath returns the activation script of an environment directory.
func ActivatePath(envDir string) string {
	return filepath.Join(envDir, "bin", "activate")
}

// ShimContent returns the activation shim sourcing activate.
func ShimContent(activate string) []byte {
	return []byte("#!/bin/bash\nsource " + shellquote.Join(activate) + "\n")
}

// BootstrapArgs returns the arguments passed to the interpreter to create
// an environment at envDir.
func BootstrapArgs(cfg *config.Config, envDir string) []string {
	return []string{"-m", "venv", "--python=" + cfg.PythonSelector(), envDir}
}

// BootstrapEnvironment creates a virtual environment at <projectPath>/venv
// and writes the activation shim next to it. The call blocks until the
// bootstrap process exits.
func (m *Manager) BootstrapEnvironment(ctx context.Context, projectPath string) (*Environment, error) {
	env := &Environment{
		Dir:  filepath.Join(projectPath, config.EnvDirName),
		Shim: filepath.Join(projectPath, config.ShimName),
	}
	env.Activate = ActivatePath(env.Dir)

	m.console.Info("Creating Python %s virtual environment...", m.cfg.PythonVersion)

	args := BootstrapArgs(m.cfg, env.Dir)
	m.log.Debug("running environment bootstrap", "command", m.cfg.Python, "args", args)

	output, err := m.exec.Execute(ctx, m.cfg.Python, args...)
	if err != nil {
		m.log.Debug("environment bootstrap output", "output", string(output))
		cause := err
		if detail := strings.TrimSpace(string(output)); detail != "" {
			cause = fmt.Errorf("%w: %s", err, detail)
		}
		return nil, errors.EnvironmentFailed(cause)
	}

	if err := m.fs.WriteFile(env.Shim, ShimContent(env.Activate), 0755); err != nil {
		return nil, errors.FilesystemError("writing activation script", err)
	}
	// WriteFile is subject to the umask.
	if err := m.fs.Chmod(env.Shim, 0755); err != nil {
		return nil, errors.FilesystemError("making activation script executable", err)
	}

	m.console.Success("Virtual environment created at %s", env.Dir)
	m.console.Info("You can activate it with: source %s", env.Shim)

	return env, nil
}

// DetectEnvironment returns the activation script of the environment
// attached to a project: <project>/venv first, then <project>/<subdir>/venv
// for the immediate subdirectories in directory listing order. It does not
// look any deeper.
func (m *Manager) DetectEnvironment(projectPath string) (string, bool) {
	direct := ActivatePath(filepath.Join(projectPath, config.EnvDirName))
	if m.fs.Exists(direct) {
		return direct, true
	}

	entries, err := m.fs.ReadDir(projectPath)
	if err != nil {
		m.log.Debug("cannot scan project for environments", "path", projectPath, "error", err)
		return "", false
	}

	for _, entry := range entries {
		sub := filepath.Join(projectPath, entry.Name())
		if !entry.IsDir() && !m.fs.IsDir(sub) {
			continue
		}
		candidate := ActivatePath(filepath.Join(sub, config.EnvDirName))
		if m.fs.Exists(candidate) {
			return candidate, true
		}
	}

	return "", false
}
