// Package project manages project folders under a single projects root.
//
// A project is a directory directly below the root. There is no registry:
// a project exists exactly when its directory does. A project may carry a
// Python virtual environment at <project>/venv, or one level deeper at
// <project>/<subdir>/venv, detected by its bin/activate script.
//
// # Operations
//
//	m := project.NewManager(project.Options{Config: cfg, Prompter: p, Logger: log, Console: console})
//
//	res, err := m.Create(ctx, "alpha", true)   // directory + environment
//	outcome, err := m.Delete(ctx, "alpha")      // asks for confirmation
//	projects, err := m.List()                   // sorted, hidden dirs skipped
//	activate, ok := m.DetectEnvironment(path)   // venv/bin/activate probe
//	nav, err := m.Navigate(ctx, "alpha")        // tagged outcome
//
// Create reports a failed environment bootstrap in CreateResult.EnvErr and
// keeps the directory it created; that partial success is a valid outcome.
//
// Navigate never changes the working directory. It returns a Navigation
// which the caller renders into signal lines for the shell wrapper.
//
// The existence check before creation is not atomic with the creation.
// Two concurrent invocations for the same name can both pass it.
package project
