package cli

import (
	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/spf13/cobra"
)

func newSummaryCmd(rt *runtime) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Fetch the task plan and print status counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := rt.fetchTasks(cmd)
			if err != nil {
				return err
			}
			s := plan.Aggregate(tasks)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			printSummary(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	return cmd
}
