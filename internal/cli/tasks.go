package cli

import (
	"fmt"

	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/spf13/cobra"
)

func newTasksCmd(rt *runtime) *cobra.Command {
	var (
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Fetch the task plan and list its tasks",
		Long: `Fetch the task plan from the configured endpoint, normalize every
recommendation into a task, and print the tasks with their status summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := rt.fetchTasks(cmd)
			if err != nil {
				return err
			}
			return emitTasks(cmd, tasks, asJSON, output)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tasks and summary as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the tasks as a JSON array to this file")
	return cmd
}

// emitTasks optionally exports tasks to output, then prints them.
func emitTasks(cmd *cobra.Command, tasks []plan.Task, asJSON bool, output string) error {
	if output != "" {
		if err := plan.WriteTasks(output, tasks); err != nil {
			return err
		}
		if !asJSON {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d tasks to %s\n", len(tasks), output)
		}
	}
	return printTasks(cmd.OutOrStdout(), tasks, asJSON)
}
