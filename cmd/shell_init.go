package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/scaffold/internal/signal"
)

var shellInitName string

var shellInitCmd = &cobra.Command{
	Use:   "shell-init <shell>",
	Short: "Print the shell function for navigate",
	Long: `Print a shell function that runs "scaffold navigate", changes into the
resolved directory and activates its virtual environment.

  bash/zsh:  eval "$(scaffold shell-init bash)"
  fish:      scaffold shell-init fish | source

Supported shells: ` + strings.Join(signal.Shells(), ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: signal.Shells(),
	RunE:      runShellInit,
}

func init() {
	shellInitCmd.Flags().StringVar(&shellInitName, "name", signal.DefaultFunctionName, "Name of the generated shell function")
	rootCmd.AddCommand(shellInitCmd)
}

func runShellInit(cmd *cobra.Command, args []string) error {
	a, err := projectsApp(cmd)
	if err != nil {
		return err
	}

	script, err := signal.WrapperScript(args[0], binaryPath(), shellInitName)
	if err != nil {
		return err
	}

	a.Logger.Debug("generated shell integration", "shell", args[0], "function", shellInitName)
	_, err = fmt.Fprint(a.Stdout(), script)
	return err
}

// binaryPath returns the absolute path of the running executable, falling
// back to the bare command name.
func binaryPath() string {
	exe, err := os.Executable()
	if err != nil {
		return rootCmd.Name()
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe
}
