package regstore

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRecordStore implements the StoreManager interface.
func (m *MockStoreManager) GetRecordStore() contract.RecordStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RecordStore)
	return store
}

// MockRecordStore is a mock implementation of RecordStore for testing.
type MockRecordStore struct {
	mock.Mock
}

var _ contract.RecordStore = &MockRecordStore{} // Compile-time check

// InsertRecords implements the RecordStore interface.
func (m *MockRecordStore) InsertRecords(ctx context.Context, records []schema.RegistrationRecord) (int64, error) {
	args := m.Called(ctx, records)
	return args.Get(0).(int64), args.Error(1)
}

// QueryRecords implements the RecordStore interface.
func (m *MockRecordStore) QueryRecords(ctx context.Context, filter schema.FilterSpec) ([]schema.RegistrationRecord, error) {
	args := m.Called(ctx, filter)
	records, _ := args.Get(0).([]schema.RegistrationRecord)
	return records, args.Error(1)
}

// DistinctValues implements the RecordStore interface.
func (m *MockRecordStore) DistinctValues(ctx context.Context) (schema.FilterOptions, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.FilterOptions), args.Error(1)
}

// Stats implements the RecordStore interface.
func (m *MockRecordStore) Stats(ctx context.Context) (schema.DatasetStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.DatasetStats), args.Error(1)
}

// Clear implements the RecordStore interface.
func (m *MockRecordStore) Clear(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// GetStatus implements the RecordStore interface.
func (m *MockRecordStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the RecordStore interface.
func (m *MockRecordStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
