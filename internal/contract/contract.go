// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/vahanlens/vahanlens/schema"
)

// RecordStore defines the persistence operations for registration records.
// This allows the report logic to be tested without a real database.
type RecordStore interface {
	// InsertRecords persists a batch of registration records and returns
	// the number of rows written.
	InsertRecords(ctx context.Context, records []schema.RegistrationRecord) (int64, error)

	// QueryRecords returns records matching the filter, ordered by period,
	// then category, maker and state.
	QueryRecords(ctx context.Context, filter schema.FilterSpec) ([]schema.RegistrationRecord, error)

	// DistinctValues returns the distinct categories, makers and states in
	// the store, plus the covered period range.
	DistinctValues(ctx context.Context) (schema.FilterOptions, error)

	// Stats returns dataset-wide counters.
	Stats(ctx context.Context) (schema.DatasetStats, error)

	// Clear removes all records and returns the number of rows deleted.
	Clear(ctx context.Context) (int64, error)

	// GetStatus returns status information about the record store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for accessing the record store.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetRecordStore() RecordStore
}
