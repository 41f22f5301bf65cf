package iocache

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orbweave/orbweave/schema"
)

func TestCaching(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitCaching(schema.SQLiteBackend, dbPath)
		assert.NoError(t, err, "Failed to initialize caching")
		assert.NotNil(t, Manager, "Manager should not be nil")
		assert.NotNil(t, Manager.GetPositionStore(), "Position store should not be nil")

		CloseCaching()

		_, err = os.Stat(dbPath)
		assert.False(t, os.IsNotExist(err), "Database file should be created")
	})

	t.Run("idempotent setup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		err1 := InitCaching(schema.SQLiteBackend, dbPath)
		err2 := InitCaching(schema.SQLiteBackend, dbPath)
		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")

		// Multiple closes should be safe (sync.Once)
		CloseCaching()
		CloseCaching()
	})

	t.Run("disabled backend", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test
		Manager.positions = nil

		err := InitCaching("", "")
		assert.NoError(t, err)
		assert.Nil(t, Manager.GetPositionStore(), "Store should stay nil when disabled")

		CloseCaching()
	})
}

func TestClearCache(t *testing.T) {
	t.Run("sqlite removes file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "cache.db")
		store, err := NewPositionStore(positionTable, schema.SQLiteBackend, dbPath)
		assert.NoError(t, err)
		assert.NoError(t, store.Close())

		assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err), "Database file should be removed")
	})

	t.Run("sqlite missing file is fine", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "never-created.db")
		assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
	})

	t.Run("sqlite requires path", func(t *testing.T) {
		assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
	})

	t.Run("none backend is a no-op", func(t *testing.T) {
		assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
	})

	t.Run("unknown backend fails", func(t *testing.T) {
		assert.Error(t, ClearCache("oracle", "", ""))
	})
}

func TestMigratePositions(t *testing.T) {
	t.Run("up and down", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "migrate.db")

		assert.NoError(t, MigratePositions(schema.SQLiteBackend, dbPath, -1))
		assert.NoError(t, MigratePositions(schema.SQLiteBackend, dbPath, -1)) // No change
		assert.NoError(t, MigratePositions(schema.SQLiteBackend, dbPath, 0))
	})

	t.Run("none backend rejected", func(t *testing.T) {
		assert.Error(t, MigratePositions(schema.NoneBackend, "", -1))
	})
}
