package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/scaffold/internal/app"
	"github.com/firefly-engineering/scaffold/internal/errors"
	"github.com/firefly-engineering/scaffold/internal/project"
	"github.com/firefly-engineering/scaffold/internal/signal"
)

// currentApp returns the App built by setupApp.
func currentApp(cmd *cobra.Command) (*app.App, error) {
	a := app.FromContext(cmd.Context())
	if a == nil {
		return nil, errors.New(errors.ExitGeneralError, "application not initialized")
	}
	return a, nil
}

// projectsApp returns the App after making sure the projects root exists.
func projectsApp(cmd *cobra.Command) (*app.App, error) {
	a, err := currentApp(cmd)
	if err != nil {
		return nil, err
	}
	if err := a.Manager.EnsureRoot(); err != nil {
		return nil, err
	}
	return a, nil
}

// emitNavigation writes the marker lines for nav to stdout, mirrors them to
// the log file and returns the navigate exit status.
func emitNavigation(a *app.App, nav project.Navigation) error {
	for _, line := range signal.Lines(nav) {
		a.Logger.Record("navigation signal", "line", line)
	}
	if err := signal.Write(a.Stdout(), nav); err != nil {
		return err
	}
	return errors.NavigateExit(nav.ExitCode())
}
