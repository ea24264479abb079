package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/scaffold/internal/errors"
	"github.com/firefly-engineering/scaffold/internal/logging"
	"github.com/firefly-engineering/scaffold/internal/project"
	"github.com/firefly-engineering/scaffold/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive project picker",
	Long: `Opens an interactive picker over the projects under the root.

Use arrow keys or j/k to move, / to filter. The picker is drawn on stderr;
the chosen target is printed on stdout as navigate marker lines, so the
shell function installed by "scaffold shell-init" runs it when called
without arguments.

Actions:
  Enter  - Open the selected project
  h      - Go to the projects root
  d      - Delete the selected project (asks for confirmation)
  q/Esc  - Quit`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	a, err := currentApp(cmd)
	if err != nil {
		return err
	}

	console := logging.NewConsole(a.Stderr(), a.Stderr(), a.Logger)
	mgr := a.Manager.WithConsole(console)

	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !isatty.IsTerminal(in.Fd()) {
		return errors.ValidationError("pick needs an interactive terminal; use navigate <name> instead")
	}

	if err := mgr.EnsureRoot(); err != nil {
		return err
	}

	projects, err := mgr.List()
	if err != nil {
		return err
	}

	a.Logger.Debug("picker mode started", "projects", len(projects))

	result, err := tui.RunPicker(projects, in, a.Stderr())
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	a.Logger.Debug("picker result", "action", result.Action)

	var nav project.Navigation
	switch result.Action {
	case tui.ActionOpen:
		nav, err = mgr.Navigate(cmd.Context(), result.Project.Name)
	case tui.ActionHome:
		nav, err = mgr.Navigate(cmd.Context(), project.HomeTarget)
	case tui.ActionDelete:
		outcome, derr := mgr.Delete(cmd.Context(), result.Project.Name)
		if derr != nil {
			return derr
		}
		if outcome == project.Deleted {
			console.Success("Project '%s' has been deleted.", result.Project.Name)
		}
		return errors.NavigateExit(errors.NavigateCancelled)
	default:
		return errors.NavigateExit(errors.NavigateCancelled)
	}
	if err != nil {
		return err
	}

	return emitNavigation(a, nav)
}
