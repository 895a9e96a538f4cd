//go:build basic

// Package integration contains integration tests for vahanlens.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Or use: make test-integration
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeedReportPipeline seeds a throwaway SQLite store and verifies that the
// report commands agree with the store's own bookkeeping.
func TestSeedReportPipeline(t *testing.T) {
	workDir := t.TempDir()
	dbPath := filepath.Join(workDir, "vahanlens.db")

	output, err := runVahanlens(t, "seed",
		"--store-db-connect", dbPath,
		"--seed", "42",
		"--from", "2023-01", "--to", "2024-12")
	require.NoError(t, err)
	assert.Contains(t, output, "Seeded")
	assert.Contains(t, output, "2023-01 to 2024-12")

	// Store status reports the authoritative record and registration counts.
	statusFile := filepath.Join(workDir, "status.json")
	_, err = runVahanlens(t, "store", "status",
		"--store-db-connect", dbPath,
		"--output", "json", "--output-file", statusFile)
	require.NoError(t, err)

	var status struct {
		Stats struct {
			TotalRecords       int64 `json:"total_records"`
			TotalRegistrations int64 `json:"total_registrations"`
		} `json:"stats"`
	}
	decodeFile(t, statusFile, &status)
	require.Positive(t, status.Stats.TotalRecords)
	require.Positive(t, status.Stats.TotalRegistrations)

	// Summing the per-category summary must reproduce the store total.
	summaryFile := filepath.Join(workDir, "summary.json")
	_, err = runVahanlens(t, "summary",
		"--store-db-connect", dbPath,
		"--group-by", "category",
		"--output", "json", "--output-file", summaryFile)
	require.NoError(t, err)

	var summary struct {
		Points []struct {
			Category string `json:"category,omitempty"`
			Total    int64  `json:"total"`
		} `json:"points"`
	}
	decodeFile(t, summaryFile, &summary)
	require.Len(t, summary.Points, 3)

	var summaryTotal int64
	for _, p := range summary.Points {
		summaryTotal += p.Total
	}
	assert.Equal(t, status.Stats.TotalRegistrations, summaryTotal)
}

// TestGrowthAndSharePipeline checks that derived reports produce computable
// values once the store spans more than a year.
func TestGrowthAndSharePipeline(t *testing.T) {
	workDir := t.TempDir()
	dbPath := filepath.Join(workDir, "vahanlens.db")

	_, err := runVahanlens(t, "seed",
		"--store-db-connect", dbPath,
		"--seed", "7",
		"--from", "2023-01", "--to", "2024-12")
	require.NoError(t, err)

	growthFile := filepath.Join(workDir, "growth.json")
	_, err = runVahanlens(t, "growth", "yoy",
		"--store-db-connect", dbPath,
		"--category", "2W",
		"--group-by", "period",
		"--output", "json", "--output-file", growthFile)
	require.NoError(t, err)

	var growth struct {
		Points []struct {
			Period string           `json:"period"`
			Growth *json.RawMessage `json:"growth"`
		} `json:"points"`
	}
	decodeFile(t, growthFile, &growth)
	require.NotEmpty(t, growth.Points)

	// Every 2024 month has a 2023 baseline, so growth must be computable
	// somewhere in the window.
	computable := 0
	for _, p := range growth.Points {
		if p.Growth != nil && string(*p.Growth) != "null" {
			computable++
		}
	}
	assert.Positive(t, computable)

	shareFile := filepath.Join(workDir, "share.json")
	_, err = runVahanlens(t, "share",
		"--store-db-connect", dbPath,
		"--category", "4W",
		"--output", "json", "--output-file", shareFile)
	require.NoError(t, err)

	var share struct {
		Points []struct {
			Maker         string  `json:"maker"`
			Total         int64   `json:"total"`
			CategoryTotal int64   `json:"category_total"`
			Share         float64 `json:"share"`
		} `json:"points"`
	}
	decodeFile(t, shareFile, &share)
	require.NotEmpty(t, share.Points)
	for _, p := range share.Points {
		assert.LessOrEqual(t, p.Total, p.CategoryTotal)
	}
}

func decodeFile(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}
