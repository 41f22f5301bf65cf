// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/orbweave/orbweave/schema"
)

// EphemerisSource supplies body positions at arbitrary instants. The core
// engine only ever talks to this interface, so a higher-fidelity ephemeris
// (or a caching layer) can be substituted without touching aspect, pattern
// or timing logic.
type EphemerisSource interface {
	// PositionAt returns the full position of one body, including speed.
	PositionAt(body schema.Body, at time.Time) (schema.BodyPosition, error)

	// MeanDailyMotion returns the body's long-term mean motion in degrees
	// per day.
	MeanDailyMotion(body schema.Body) (float64, error)
}

// PositionStore is durable storage for computed positions, keyed by body and
// minute bucket. Recomputation is idempotent, so racing writers are benign.
type PositionStore interface {
	// Get returns the cached position for a key, or sql.ErrNoRows-wrapped
	// miss when absent.
	Get(body schema.Body, bucket int64) (schema.CachedPosition, error)

	// Set inserts or replaces the cached position for a key.
	Set(pos schema.CachedPosition) error

	// Status reports entry counts and entry-time bounds.
	Status() (schema.CacheStatus, error)

	// Close releases the underlying connection.
	Close() error
}

// CacheManager hands out the configured position store, or nil when caching
// is disabled.
type CacheManager interface {
	GetPositionStore() PositionStore
}
