package cli

import (
	"fmt"

	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/spf13/cobra"
)

func newNormalizeCmd(rt *runtime) *cobra.Command {
	var (
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "normalize <file|->",
		Short: "Normalize a saved task-plan payload",
		Long: `Normalize a task-plan payload saved to disk (or read from stdin with "-")
without contacting the endpoint. A payload that is valid JSON but not an
array yields no tasks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := plan.ReadPayload(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			tasks, err := plan.NormalizeJSON(raw)
			if err != nil {
				return fmt.Errorf("invalid payload %s: %w", args[0], err)
			}
			rt.log.Debug("Payload normalized", "source", args[0], "tasks", len(tasks))
			return emitTasks(cmd, tasks, asJSON, output)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tasks and summary as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the tasks as a JSON array to this file")
	return cmd
}
