package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/firefly-engineering/scaffold/internal/app"
	"github.com/firefly-engineering/scaffold/internal/config"
	"github.com/firefly-engineering/scaffold/internal/errors"
	"github.com/firefly-engineering/scaffold/internal/logging"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Manage project folders",
	Long: `scaffold manages project folders under a single projects root
(~/Documents/Projects by default).

Each project is a plain directory that may carry a Python virtual
environment at venv/, with an activate.sh shim at the project root.
Use "scaffold shell-init" to install the shell function that lets
navigate change your shell's directory.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

// setupApp loads the configuration and builds the App for this run.
func setupApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.ConfigError("failed to load configuration", err)
	}

	_, err = app.Init(cmd.Context(), cfg,
		app.WithVerbose(verbose),
		app.WithStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
	if err != nil {
		return errors.ConfigError("failed to initialize logging", err)
	}
	return nil
}

// Execute runs the command tree.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the command tree with ctx. Options attached with
// app.NewContext are applied to the App built for the run.
func ExecuteContext(ctx context.Context) error {
	ctx = app.NewContext(ctx)
	err := rootCmd.ExecuteContext(ctx)

	a := app.FromContext(ctx)
	if err != nil && !errors.IsSilent(err) {
		report(a, err)
	}
	if a != nil {
		_ = a.Close()
	}
	return err
}

// report shows err to the user and records it in the log file.
func report(a *app.App, err error) {
	if a == nil {
		logging.NewConsole(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), nil).Error("%v", err)
		return
	}

	code := errors.GetExitCode(err)
	if code == errors.ExitGeneralError {
		a.Logger.Record("unexpected error", "error", err, zap.Stack("stack"))
	} else {
		a.Logger.Record("command failed", "error", err, "exit_code", code)
	}
	a.Console.Error("%v", err)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
