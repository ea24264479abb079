package app

import (
	"context"
	"io"
	"os"

	"github.com/firefly-engineering/scaffold/internal/config"
	"github.com/firefly-engineering/scaffold/internal/history"
	"github.com/firefly-engineering/scaffold/internal/logging"
	"github.com/firefly-engineering/scaffold/internal/project"
	"github.com/firefly-engineering/scaffold/internal/prompt"
	"github.com/firefly-engineering/scaffold/internal/system"
)

// App holds the application dependencies
type App struct {
	// Config is the resolved configuration
	Config *config.Config

	// Logger writes diagnostics to stderr and the per-day log file
	Logger *logging.Logger

	// Console writes user-facing messages
	Console *logging.Console

	// Prompter asks the operator for confirmation
	Prompter prompt.Prompter

	// FS and Executor are the system boundaries
	FS       system.FileSystem
	Executor system.CommandExecutor

	// History records lifecycle events
	History *history.Recorder

	// Manager implements the project operations
	Manager *project.Manager

	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

// Option is a function that configures the App
type Option func(*App)

// WithStreams sets the standard streams
func WithStreams(in io.Reader, out, errw io.Writer) Option {
	return func(a *App) {
		a.stdin = in
		a.stdout = out
		a.stderr = errw
	}
}

// WithVerbose enables debug output on the console
func WithVerbose(verbose bool) Option {
	return func(a *App) {
		a.verbose = verbose
	}
}

// WithLogger sets a custom logger
func WithLogger(l *logging.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithPrompter sets a custom prompter
func WithPrompter(p prompt.Prompter) Option {
	return func(a *App) {
		a.Prompter = p
	}
}

// WithFileSystem sets a custom filesystem
func WithFileSystem(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(e system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = e
	}
}

// New creates a new App for cfg with the given options.
// Unset dependencies get their production implementation.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	a := &App{
		Config: cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		logger, err := logging.New(logging.Options{
			Verbose: a.verbose,
			Console: a.stderr,
			Dir:     cfg.LogDir,
		})
		if err != nil {
			return nil, err
		}
		a.Logger = logger
	}

	a.Console = logging.NewConsole(a.stdout, a.stderr, a.Logger)

	if a.Prompter == nil {
		if f, ok := a.stdin.(*os.File); ok {
			a.Prompter = prompt.New(f, a.stderr)
		} else {
			a.Prompter = prompt.NewLinePrompter(a.stdin, a.stderr)
		}
	}
	if a.FS == nil {
		a.FS = system.OSFileSystem()
	}
	if a.Executor == nil {
		a.Executor = system.OSExecutor()
	}

	a.History = history.NewRecorder(cfg.StateDir)
	a.Manager = project.NewManager(project.Options{
		Config:   cfg,
		FS:       a.FS,
		Executor: a.Executor,
		Prompter: a.Prompter,
		Logger:   a.Logger,
		Console:  a.Console,
		History:  a.History,
	})

	a.Logger.Debug("application initialized",
		"projects_dir", cfg.ProjectsDir,
		"log_file", a.Logger.Path())

	return a, nil
}

// Stdout returns the output stream
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// Stderr returns the diagnostics stream
func (a *App) Stderr() io.Writer {
	return a.stderr
}

// Close flushes and closes the logger
func (a *App) Close() error {
	return a.Logger.Close()
}

type contextKey struct{}

// runState carries options into a command run and the App out of it.
type runState struct {
	opts []Option
	app  *App
}

// NewContext returns a context carrying opts for the App built by the
// next command run. A context that already carries options is returned
// unchanged.
func NewContext(ctx context.Context, opts ...Option) context.Context {
	if _, ok := ctx.Value(contextKey{}).(*runState); ok {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, &runState{opts: opts})
}

// Init builds the App for ctx's run. extra options are applied before the
// ones carried by ctx, so injected dependencies win.
func Init(ctx context.Context, cfg *config.Config, extra ...Option) (*App, error) {
	state, ok := ctx.Value(contextKey{}).(*runState)
	if !ok {
		state = &runState{}
	}

	a, err := New(cfg, append(extra, state.opts...)...)
	if err != nil {
		return nil, err
	}
	state.app = a
	return a, nil
}

// FromContext returns the App built for ctx's run, or nil.
func FromContext(ctx context.Context) *App {
	if ctx == nil {
		return nil
	}
	if state, ok := ctx.Value(contextKey{}).(*runState); ok {
		return state.app
	}
	return nil
}
