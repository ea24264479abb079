package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Display project lifecycle events",
	Long: `Display the recorded create, environment, delete and navigate events,
optionally only those of one project.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output events as JSON lines")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := projectsApp(cmd)
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	events, err := a.History.Events(name)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(events) == 0 {
		if name != "" {
			a.Console.Info("No events found for project %s", name)
		} else {
			a.Console.Info("No events recorded yet")
		}
		return nil
	}

	out := a.Stdout()
	for _, e := range events {
		if historyJSON {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Fprintln(out, string(data))
			continue
		}

		ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		if e.Details != "" {
			fmt.Fprintf(out, "[%s] %-11s %s (%s)\n", ts, e.Type, e.Project, e.Details)
		} else {
			fmt.Fprintf(out, "[%s] %-11s %s\n", ts, e.Type, e.Project)
		}
	}

	return nil
}
