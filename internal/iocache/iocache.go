// Package iocache is durable caching for computed ephemeris positions.
package iocache

import (
	"sync"

	"github.com/orbweave/orbweave/internal/contract"
)

// CacheStoreManager manages the configured position store.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	positions    contract.PositionStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetPositionStore returns the position store, or nil when caching is off.
func (mgr *CacheStoreManager) GetPositionStore() contract.PositionStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.positions
}
