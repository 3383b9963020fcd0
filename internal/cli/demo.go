package cli

import (
	"github.com/pablasso/fieldplan/internal/demo"
	"github.com/spf13/cobra"
)

func newDemoCmd(rt *runtime) *cobra.Command {
	var (
		preset   string
		scenario string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the TUI against the embedded demo payload",
		Long: `Launch the interactive diagram with an embedded task-plan payload instead
of the network endpoint. Useful for iterating on the TUI and for offline
demonstrations.

Presets (simulated latency):
  quick    200ms
  medium   1s (default)
  slow     3s

Scenarios:
  success  Embedded fixture (default)
  empty    A payload that is not an array
  fail     A transport failure`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := parseDemoConfig(preset, scenario)
			if err != nil {
				return err
			}
			return rt.launchTUI(cmd, &cfg)
		},
	}

	cmd.Flags().StringVar(&preset, "preset", string(demo.PresetMedium), "Latency preset: quick, medium, slow")
	cmd.Flags().StringVar(&scenario, "scenario", string(demo.ScenarioSuccess), "Scenario: success, empty, fail")
	return cmd
}
