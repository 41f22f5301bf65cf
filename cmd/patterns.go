package cmd

import (
	"github.com/orbweave/orbweave/core"
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/spf13/cobra"
)

// patternsCmd performs multi-body configuration detection.
var patternsCmd = &cobra.Command{
	Use:   "patterns <chart-file>",
	Short: "Show the multi-body configurations present in a chart.",
	Long: `Detect closed multi-body configurations formed by chart aspects.

Recognized configurations:
- Grand trine: three bodies in mutual trine, rated by elemental purity
- T-square: two bodies in opposition, both square to a third apex body
- Stellium: three or more bodies clustered in the same sign

Configuration strength is the mean strength of the member aspects, so a
tight pattern outranks a loose one with the same shape.

Examples:
  # List configurations in a chart
  orbweave patterns chart.yaml

  # Widen orbs to catch looser formations
  orbweave patterns chart.yaml --orb trine=8,square=8`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePatterns(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run pattern detection", err)
		}
	},
}
