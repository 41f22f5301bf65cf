package iocache

import (
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"
	"github.com/stretchr/testify/mock"
)

// MockCacheManager is a mock implementation of CacheManager for testing.
type MockCacheManager struct {
	mock.Mock
}

var _ contract.CacheManager = &MockCacheManager{} // Compile-time check

// GetPositionStore implements the CacheManager interface.
func (m *MockCacheManager) GetPositionStore() contract.PositionStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.PositionStore)
	return store
}

// MockPositionStore is a mock implementation of PositionStore for testing.
type MockPositionStore struct {
	mock.Mock
}

var _ contract.PositionStore = &MockPositionStore{} // Compile-time check

// Get implements the PositionStore interface.
func (m *MockPositionStore) Get(body schema.Body, bucket int64) (schema.CachedPosition, error) {
	args := m.Called(body, bucket)
	return args.Get(0).(schema.CachedPosition), args.Error(1)
}

// Set implements the PositionStore interface.
func (m *MockPositionStore) Set(pos schema.CachedPosition) error {
	args := m.Called(pos)
	return args.Error(0)
}

// Status implements the PositionStore interface.
func (m *MockPositionStore) Status() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// Close implements the PositionStore interface.
func (m *MockPositionStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
