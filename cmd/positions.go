package cmd

import (
	"github.com/orbweave/orbweave/core"
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/spf13/cobra"
)

// positionsCmd computes an ephemeris snapshot.
var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Show computed body positions for a given date.",
	Long: `Compute ecliptic longitudes for every supported body at one date.

Positions come from the built-in periodic-term ephemeris, so no chart
file is needed. Each row shows the longitude, the zodiac placement and
whether the body is in direct or retrograde motion.

Examples:
  # Positions right now
  orbweave positions

  # Positions for a specific date
  orbweave positions --date 2026-03-20

  # Machine-readable snapshot
  orbweave positions --date 2026-03-20 --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePositions(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot compute positions", err)
		}
	},
}
