package regstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/vahanlens/vahanlens/internal/parquet"
	"github.com/vahanlens/vahanlens/schema"
)

// ExecuteStoreExport performs the actual export of registration data to a Parquet file.
func ExecuteStoreExport(ctx context.Context, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the record store
	store := Manager.GetRecordStore()
	if store == nil {
		return errors.New("registration store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRecords == 0 {
		return errors.New("no registration data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total records: %d (%s to %s)\n", status.TotalRecords, status.FirstPeriod, status.LastPeriod)

	// Retrieve all records
	records, err := store.QueryRecords(ctx, schema.FilterSpec{})
	if err != nil {
		return fmt.Errorf("failed to retrieve records: %w", err)
	}

	// Convert to Parquet format and write
	rows := parquet.ConvertRegistrationRecords(records)
	if err := parquet.WriteRegistrationsParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write registrations: %w", err)
	}
	fmt.Printf("Exported %d registration rows to: %s\n", len(rows), outputFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
