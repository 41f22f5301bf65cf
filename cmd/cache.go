package cmd

import (
	"fmt"

	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/internal/iocache"
	"github.com/orbweave/orbweave/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.CacheBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, or none", backend)
	}
	if backend != schema.SQLiteBackend && backend != schema.NoneBackend && connStr == "" {
		return fmt.Errorf("cache backend '%s' requires a connection string", backend)
	}

	// Initialize caching with the loaded config
	if err := iocache.InitCaching(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by analysis commands. This avoids chart loading
// and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the ephemeris position cache (improves performance)",
	Long: `Manage the position cache that speeds up repeated forecasts.

Orbweave caches computed body positions so long forecast ranges do not
re-evaluate the periodic series for dates that were already scanned.

Examples:
  # Check what's in the cache
  orbweave cache status

  # Start fresh
  orbweave cache clear`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached position data",
	Long: `Delete all cached position data from the configured backend.

Use this when:
- The ephemeris series were updated between releases
- Cache may be stale or corrupted
- Testing performance without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  orbweave cache clear

  # Clear MySQL cache (set connection string via env variable)
  ORBWEAVE_CACHE_BACKEND=mysql ORBWEAVE_CACHE_DB_CONNECT="..." orbweave cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the position cache.

Displays:
- Backend type and connection status
- Total number of cached positions
- Last and oldest cache entry timestamps

Examples:
  # Check cache status
  orbweave cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetPositionStore()
		if store == nil {
			fmt.Println("Caching is disabled.")
			return
		}
		status, err := store.Status()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

// cacheMigrateCmd applies schema migrations to the cache database.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations to the cache database",
	Long: `Run embedded schema migrations against the position cache database.

By default migrates to the latest version. Pass --target-version 0 to
roll the schema all the way back, or a positive number to pin a
specific version.

Examples:
  # Migrate to the latest schema
  orbweave cache migrate

  # Roll back completely
  orbweave cache migrate --target-version 0`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := iocache.MigratePositions(cfg.CacheBackend, cfg.CacheDBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate cache database", err)
		}
	},
}
