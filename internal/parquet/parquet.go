// Package parquet provides data structures and functions for exporting
// registration data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/vahanlens/vahanlens/schema"
)

// Registration represents a single registration row for columnar export.
// This struct maps to the vehicle_registrations database table.
type Registration struct {
	// Period is the calendar month in YYYY-MM form
	Period string `parquet:"period,snappy"`

	// Category is the vehicle category code (2W, 3W, 4W)
	Category string `parquet:"category,snappy"`

	// Maker is the vehicle manufacturer name
	Maker string `parquet:"maker,snappy"`

	// State is the registering state name
	State string `parquet:"state,snappy"`

	// Count is the number of registrations for the tuple
	Count int64 `parquet:"reg_count,snappy"`
}

// ConvertRegistrationRecords converts store records to Parquet rows.
func ConvertRegistrationRecords(records []schema.RegistrationRecord) []Registration {
	out := make([]Registration, len(records))
	for i, r := range records {
		out[i] = Registration{
			Period:   r.Period.String(),
			Category: string(r.Category),
			Maker:    r.Maker,
			State:    r.State,
			Count:    r.Count,
		}
	}
	return out
}

// WriteRegistrationsParquet writes registration rows to a Parquet file.
func WriteRegistrationsParquet(rows []Registration, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[Registration](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return nil
}
