package cmd

import (
	"github.com/orbweave/orbweave/core"
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/spf13/cobra"
)

// aspectsCmd performs single-chart aspect analysis.
var aspectsCmd = &cobra.Command{
	Use:   "aspects <chart-file>",
	Short: "Show the top aspects of a chart ranked by strength.",
	Long: `Detect angular aspects between the bodies of a natal chart.

Measures every body pair against the configured aspect rules, helping you:
- Find the exact and near-exact contacts that dominate a chart
- See which aspects are applying (still tightening) versus separating
- Widen or narrow detection with per-type orb overrides
- Pull minor aspects into the picture when they matter

Aspects are ranked from strongest to weakest, where strength falls off
linearly from 1.0 at the exact angle to 0.0 at the orb boundary.

Examples:
  # Rank the strongest aspects in a chart
  orbweave aspects chart.yaml --limit 20

  # Include minor aspects with a tighter square orb
  orbweave aspects chart.yaml --minor --orb square=4

  # Replace the built-in rule table with a custom one
  orbweave aspects chart.yaml --rules rules.yaml

  # Export findings to CSV for tracking
  orbweave aspects chart.yaml --output csv --output-file aspects.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAspects(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run aspect analysis", err)
		}
	},
}
