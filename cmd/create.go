package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/scaffold/internal/errors"
)

var createEnv bool

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project folder",
	Long: `Create a new project folder under the projects root.

With --env a Python virtual environment is bootstrapped at <project>/venv
and an activate.sh shim is written at the project root. If the bootstrap
fails the folder is kept and a warning is printed.

An existing project is reported and left untouched. Like a failed
bootstrap, it is not treated as a command failure.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&createEnv, "env", false, "Create a Python virtual environment")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	a, err := projectsApp(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	result, err := a.Manager.Create(cmd.Context(), name, createEnv)
	if errors.GetExitCode(err) == errors.ExitProjectExists {
		path, _ := a.Manager.ProjectPath(name)
		a.Console.Error("%v", err)
		a.Console.Print("You can either:")
		a.Console.Print("  1. cd into it: cd %s", path)
		a.Console.Print("  2. Choose another project name")
		return nil
	}
	if err != nil {
		return err
	}

	if result.Partial() {
		a.Console.Warning("Project folder %s was created without a virtual environment", result.Path)
	}
	return nil
}
