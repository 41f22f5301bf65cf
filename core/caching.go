package core

import (
	"github.com/orbweave/orbweave/core/astro"
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/internal/iocache"
)

// positionSource returns the ephemeris source every executor computes with.
// When the global cache manager holds a store, table lookups are layered
// behind it; otherwise the raw periodic-term provider is used directly.
func positionSource() contract.EphemerisSource {
	return iocache.NewCachedSource(astro.NewProvider(), iocache.Manager.GetPositionStore())
}
