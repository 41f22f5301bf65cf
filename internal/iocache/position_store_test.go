package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbweave/orbweave/schema"
)

func newTestStore(t *testing.T) *PositionStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewPositionStore(positionTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*PositionStoreImpl)
}

func TestPositionStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	pos := schema.CachedPosition{
		Body:       schema.Mars,
		Bucket:     29761920,
		Longitude:  123.456,
		Speed:      0.524,
		ComputedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Set(pos))

	got, err := store.Get(schema.Mars, 29761920)
	require.NoError(t, err)
	assert.Equal(t, pos, got)
}

func TestPositionStoreMiss(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(schema.Venus, 12345)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPositionStoreOverwrite(t *testing.T) {
	store := newTestStore(t)

	first := schema.CachedPosition{
		Body: schema.Sun, Bucket: 100, Longitude: 10,
		ComputedAt: time.Unix(1000, 0).UTC(),
	}
	second := first
	second.Longitude = 20
	second.ComputedAt = time.Unix(2000, 0).UTC()

	require.NoError(t, store.Set(first))
	require.NoError(t, store.Set(second))

	got, err := store.Get(schema.Sun, 100)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.Longitude)
}

func TestPositionStoreStatus(t *testing.T) {
	store := newTestStore(t)

	status, err := store.Status()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalEntries)

	early := time.Unix(1000, 0).UTC()
	late := time.Unix(5000, 0).UTC()
	require.NoError(t, store.Set(schema.CachedPosition{Body: schema.Sun, Bucket: 1, ComputedAt: early}))
	require.NoError(t, store.Set(schema.CachedPosition{Body: schema.Moon, Bucket: 2, ComputedAt: late}))

	status, err = store.Status()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.TotalEntries)
	assert.Equal(t, early, status.OldestEntryTime)
	assert.Equal(t, late, status.LastEntryTime)
}

func TestPositionStoreNoneBackend(t *testing.T) {
	store, err := NewPositionStore(positionTable, schema.NoneBackend, "")
	require.NoError(t, err)

	// Writes are silently dropped and reads always miss.
	assert.NoError(t, store.Set(schema.CachedPosition{Body: schema.Sun, Bucket: 1}))
	_, err = store.Get(schema.Sun, 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.Status()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Close())
}

func TestPositionStoreRejectsBadInput(t *testing.T) {
	_, err := NewPositionStore("bad;table", schema.SQLiteBackend, "")
	assert.Error(t, err)

	_, err = NewPositionStore("", schema.SQLiteBackend, "")
	assert.Error(t, err)

	_, err = NewPositionStore(positionTable, "oracle", "")
	assert.Error(t, err)
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("position_cache"))
	assert.NoError(t, validateTableName("_tmp2"))
	assert.Error(t, validateTableName("1bad"))
	assert.Error(t, validateTableName("drop table"))
}
