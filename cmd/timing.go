package cmd

import (
	"github.com/orbweave/orbweave/core"
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/spf13/cobra"
)

// timingCmd runs the transit timing engine.
var timingCmd = &cobra.Command{
	Use:   "timing <chart-file>",
	Short: "Forecast favorable timing windows for a chart.",
	Long: `Scan a future date range for favorable timing windows.

For each day in the range the engine progresses the natal chart,
computes transiting positions and checks the category's trigger rules.
Three kinds of windows can open:
- aspect: progressed or transiting bodies form rule-matching aspects
- angle_activation: bodies cross the chart's baseline angle or its squares
- concentration: three or more active bodies pool in one sign

The forecast merges adjacent same-kind windows, ranks peak days and
reports an overall confidence score for the period.

Examples:
  # Ninety-day general forecast
  orbweave timing chart.yaml

  # Career-focused forecast over six months
  orbweave timing chart.yaml --category career --lookahead 180

  # Strict mode: abort if any body cannot be computed
  orbweave timing chart.yaml --fallback propagate

  # Export the window list to Parquet
  orbweave timing chart.yaml --output parquet --output-file forecast.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTiming(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run timing forecast", err)
		}
	},
}
