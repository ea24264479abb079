package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/scaffold/internal/config"
	"github.com/firefly-engineering/scaffold/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	TmpDir   string
	Config   *config.Config
	Executor *system.MockExecutor
}

// NewTestEnv creates a new test environment with a bootstrap-simulating
// executor. The projects root is not created.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()

	cfg := &config.Config{
		ProjectsDir:   filepath.Join(tmpDir, "Projects"),
		StateDir:      filepath.Join(tmpDir, "state"),
		LogDir:        filepath.Join(tmpDir, "state", "logs"),
		Python:        config.DefaultPython,
		PythonVersion: config.DefaultPythonVersion,
	}

	executor := system.NewMockExecutor()
	executor.OnExecute = FakeBootstrap

	return &TestEnv{
		T:        t,
		TmpDir:   tmpDir,
		Config:   cfg,
		Executor: executor,
	}
}

// FakeBootstrap is a MockExecutor hook that creates the activation script
// inside the target directory, the last argument of the bootstrap command.
func FakeBootstrap(cmd system.MockCommand) {
	if len(cmd.Args) == 0 {
		return
	}
	envDir := cmd.Args[len(cmd.Args)-1]
	_ = os.MkdirAll(filepath.Join(envDir, "bin"), 0755)
	_ = os.WriteFile(filepath.Join(envDir, "bin", "activate"), []byte("# activate\n"), 0644)
}

// ProjectPath returns the directory of a project
func (e *TestEnv) ProjectPath(name string) string {
	return filepath.Join(e.Config.ProjectsDir, name)
}

// ProjectExists checks if a project directory exists
func (e *TestEnv) ProjectExists(name string) bool {
	info, err := os.Stat(e.ProjectPath(name))
	return err == nil && info.IsDir()
}

// AddProject creates a project directory with optional nested
// subdirectories and returns its path
func (e *TestEnv) AddProject(name string, subdirs ...string) string {
	e.T.Helper()

	path := e.ProjectPath(name)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.T.Fatalf("Failed to create project: %v", err)
	}
	for _, sub := range subdirs {
		if err := os.MkdirAll(filepath.Join(path, sub), 0755); err != nil {
			e.T.Fatalf("Failed to create %s: %v", sub, err)
		}
	}
	return path
}

// AddFile writes a file inside a project and returns its path
func (e *TestEnv) AddFile(name, rel, content string) string {
	e.T.Helper()

	path := filepath.Join(e.ProjectPath(name), rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write file: %v", err)
	}
	return path
}

// AddEnvironment creates a virtual environment layout in the project, or
// in the given subdirectory of it, and returns the activation script path
func (e *TestEnv) AddEnvironment(name string, subdir ...string) string {
	e.T.Helper()

	rel := filepath.Join(append(subdir, config.EnvDirName, "bin", "activate")...)
	return e.AddFile(name, rel, "# activate\n")
}
