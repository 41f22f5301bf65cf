package cmd

import (
	"github.com/orbweave/orbweave/core"
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/spf13/cobra"
)

// synastryCmd performs cross-chart aspect analysis.
var synastryCmd = &cobra.Command{
	Use:   "synastry <chart-file-a> <chart-file-b>",
	Short: "Show the top cross-chart aspects between two charts.",
	Long: `Detect angular aspects between the bodies of two separate charts.

Every body of the first chart is measured against every body of the
second, so a pair like Sun-Sun is valid here even though it never is
within a single chart.

Examples:
  # Rank the strongest contacts between two charts
  orbweave synastry alice.yaml bob.yaml

  # Export cross-chart contacts as JSON
  orbweave synastry alice.yaml bob.yaml --output json`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSynastry(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run synastry analysis", err)
		}
	},
}
