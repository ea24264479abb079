package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/scaffold/internal/errors"
	"github.com/firefly-engineering/scaffold/internal/logging"
	"github.com/firefly-engineering/scaffold/internal/project"
)

var navigateCmd = &cobra.Command{
	Use:   "navigate <name|home>",
	Short: "Resolve where the shell should go for a project",
	Long: `Resolve the directory of a project for the shell function installed by
"scaffold shell-init". "home" targets the projects root.

A missing project is offered for creation. The outcome is printed on
stdout as marker lines:

  NAVIGATE_TO:<path>
  ACTIVATE_VENV:<path to bin/activate>

Exit codes: 0 navigated to an existing project (or home), 1 created then
navigated, 2 cancelled or failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runNavigate,
}

func init() {
	rootCmd.AddCommand(navigateCmd)
}

func runNavigate(cmd *cobra.Command, args []string) error {
	a, err := currentApp(cmd)
	if err != nil {
		return err
	}

	// stdout is reserved for the marker lines.
	console := logging.NewConsole(a.Stderr(), a.Stderr(), a.Logger)
	mgr := a.Manager.WithConsole(console)

	if err := mgr.EnsureRoot(); err != nil {
		console.Error("%v", err)
		return errors.NavigateExit(errors.NavigateCancelled)
	}

	nav, err := mgr.Navigate(cmd.Context(), args[0])
	if err != nil {
		console.Error("%v", err)
		a.Logger.Record("navigate failed", "name", args[0], "error", err)
		return errors.NavigateExit(errors.NavigateCancelled)
	}

	if nav.Kind == project.Cancelled {
		console.Info("Navigation cancelled.")
	}
	return emitNavigation(a, nav)
}
