// Package cmd defines the command-line interface for orbweave.
package cmd

import (
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(aspectsCmd)
	rootCmd.AddCommand(synastryCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(timingCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("date", "", "Date for position snapshots in ISO8601 (defaults to now)")
	rootCmd.PersistentFlags().String("from", "", "Start date for timing forecasts in ISO8601 (defaults to now)")
	rootCmd.PersistentFlags().Int("lookahead", contract.DefaultLookaheadDays, "Number of days to scan ahead for timing windows")
	rootCmd.PersistentFlags().String("category", string(schema.GeneralCategory), "Event category: career, relationship, finance, health or general")
	rootCmd.PersistentFlags().Bool("minor", false, "Include minor aspects (quincunx, semisextile)")
	rootCmd.PersistentFlags().String("orb", "", "Per-type orb overrides (format: 'square=4,trine=5.5')")
	rootCmd.PersistentFlags().String("rules", "", "Path to a YAML aspect rule file replacing the built-in table")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("fallback", string(schema.SkipFallback), "Fallback policy for unsupported bodies: skip or propagate")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
