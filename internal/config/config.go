package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

const (
	// AppName names the config and state directories.
	AppName = "scaffold"

	// ConfigFileName is the name of the TOML config file.
	ConfigFileName = "config.toml"

	// EnvDirName is the directory name of a project's virtual environment.
	EnvDirName = "venv"

	// ShimName is the activation shim written at the project root.
	ShimName = "activate.sh"

	DefaultPython        = "python3"
	DefaultPythonVersion = "3.12"
)

// Environment variable names
const (
	EnvProjectsDir   = "SCAFFOLD_PROJECTS_DIR"
	EnvStateDir      = "SCAFFOLD_STATE_DIR"
	EnvLogDir        = "SCAFFOLD_LOG_DIR"
	EnvPython        = "SCAFFOLD_PYTHON"
	EnvPythonVersion = "SCAFFOLD_PYTHON_VERSION"
)

// Config holds the resolved scaffold configuration.
type Config struct {
	// ProjectsDir is the single root under which every project lives.
	ProjectsDir string `toml:"projects_dir"`

	// StateDir holds the lifecycle history.
	StateDir string `toml:"state_dir"`

	// LogDir holds the per-day log files.
	LogDir string `toml:"log_dir"`

	// Python is the interpreter used to bootstrap environments.
	Python string `toml:"python"`

	// PythonVersion selects the runtime version of new environments.
	PythonVersion string `toml:"python_version"`
}

// Default returns the configuration used when nothing is overridden.
func Default() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}
	stateDir := filepath.Join(stateHome, AppName)

	return &Config{
		ProjectsDir:   filepath.Join(home, "Documents", "Projects"),
		StateDir:      stateDir,
		LogDir:        filepath.Join(stateDir, "logs"),
		Python:        DefaultPython,
		PythonVersion: DefaultPythonVersion,
	}, nil
}

// DefaultConfigPath returns the path of the config file used when --config
// is not given.
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppName, ConfigFileName), nil
}

// Load resolves the configuration. When path is empty the default config
// path is used and a missing file is not an error; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.expand(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string, explicit bool) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}

	if _, err := os.Stat(expanded); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	md, err := toml.DecodeFile(expanded, c)
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", expanded, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q in config file %s", undecoded[0].String(), expanded)
	}

	return nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		env    string
		target *string
	}{
		{EnvProjectsDir, &c.ProjectsDir},
		{EnvStateDir, &c.StateDir},
		{EnvLogDir, &c.LogDir},
		{EnvPython, &c.Python},
		{EnvPythonVersion, &c.PythonVersion},
	}

	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}

func (c *Config) expand() error {
	for _, dir := range []*string{&c.ProjectsDir, &c.StateDir, &c.LogDir} {
		expanded, err := homedir.Expand(*dir)
		if err != nil {
			return fmt.Errorf("failed to expand %q: %w", *dir, err)
		}
		*dir = expanded
	}
	return nil
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if c.ProjectsDir == "" {
		return fmt.Errorf("projects_dir is required")
	}
	if !filepath.IsAbs(c.ProjectsDir) {
		return fmt.Errorf("projects_dir must be an absolute path: %s", c.ProjectsDir)
	}
	if c.StateDir == "" {
		return fmt.Errorf("state_dir is required")
	}
	if c.Python == "" {
		return fmt.Errorf("python is required")
	}
	if c.PythonVersion == "" {
		return fmt.Errorf("python_version is required")
	}
	return nil
}

// PythonSelector returns the runtime selector passed to the bootstrap
// command, e.g. "python3.12".
func (c *Config) PythonSelector() string {
	return "python" + c.PythonVersion
}
