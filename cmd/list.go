package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/scaffold/internal/project"
)

var listPlain bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Long: `List the project folders under the projects root in name order.

Hidden folders (names starting with a dot) are skipped. Projects with a
detected virtual environment are annotated with its location.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Print project names only, one per line")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := projectsApp(cmd)
	if err != nil {
		return err
	}

	projects, err := a.Manager.List()
	if err != nil {
		return err
	}

	out := a.Stdout()

	if listPlain {
		for _, p := range projects {
			fmt.Fprintln(out, p.Name)
		}
		return nil
	}

	if len(projects) == 0 {
		a.Console.Info("No projects found.")
		return nil
	}

	r := lipgloss.NewRenderer(out)
	nameStyle := r.NewStyle().Bold(true)
	envStyle := r.NewStyle().Foreground(lipgloss.Color("242"))

	fmt.Fprintln(out, "Available projects:")
	for _, p := range projects {
		line := "  - " + nameStyle.Render(p.Name)
		if env := envLabel(p); env != "" {
			line += " " + envStyle.Render("("+env+")")
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// envLabel returns the environment directory relative to the project,
// e.g. "venv" or "backend/venv".
func envLabel(p project.Project) string {
	if !p.HasEnvironment() {
		return ""
	}
	envDir := filepath.Dir(filepath.Dir(p.Activate))
	rel, err := filepath.Rel(p.Path, envDir)
	if err != nil {
		return envDir
	}
	return rel
}
