package schema

import "time"

// CacheStatus contains health and size information about the position cache.
type CacheStatus struct {
	Backend         CacheBackend `json:"backend"`
	Connected       bool         `json:"connected"`
	TotalEntries    int64        `json:"total_entries"`
	LastEntryTime   time.Time    `json:"last_entry_time"`
	OldestEntryTime time.Time    `json:"oldest_entry_time"`
}

// CachedPosition is one stored ephemeris result. Recomputation is idempotent,
// so concurrent writers racing on the same key always store an equal value.
type CachedPosition struct {
	Body       Body      `json:"body"`
	Bucket     int64     `json:"bucket"` // unix minutes, the cache granularity
	Longitude  float64   `json:"longitude"`
	Speed      float64   `json:"speed"`
	ComputedAt time.Time `json:"computed_at"`
}
