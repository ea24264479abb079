package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/scaffold/internal/errors"
	"github.com/firefly-engineering/scaffold/internal/project"
	"github.com/firefly-engineering/scaffold/internal/prompt"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a project folder",
	Long: `Delete a project folder and everything in it.

You are asked to confirm first unless --yes is given. Read-only files
and directories inside the project are made writable and removed.
Declining, or naming a project that does not exist, is reported but is
not a command failure.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking for confirmation")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := projectsApp(cmd)
	if err != nil {
		return err
	}
	name := args[0]

	mgr := a.Manager
	if deleteYes {
		mgr = mgr.WithPrompter(prompt.Always(true))
	}

	outcome, err := mgr.Delete(cmd.Context(), name)
	if errors.GetExitCode(err) == errors.ExitProjectNotFound {
		a.Console.Error("%v", err)
		return nil
	}
	if err != nil {
		return err
	}

	if outcome == project.DeleteCancelled {
		a.Console.Info("Delete operation cancelled.")
		return nil
	}

	a.Console.Success("Project '%s' has been deleted.", name)
	return nil
}
