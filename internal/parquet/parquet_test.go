package parquet

import (
	"os"
	"path/filepath"
	"testing"

	pq "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vahanlens/vahanlens/schema"
)

func TestConvertRegistrationRecords(t *testing.T) {
	records := []schema.RegistrationRecord{
		{
			Period:   schema.Period{Year: 2024, Month: 1},
			Category: schema.TwoWheeler,
			Maker:    "Hero",
			State:    "Karnataka",
			Count:    100,
		},
	}
	rows := ConvertRegistrationRecords(records)
	require.Len(t, rows, 1)
	assert.Equal(t, Registration{
		Period:   "2024-01",
		Category: "2W",
		Maker:    "Hero",
		State:    "Karnataka",
		Count:    100,
	}, rows[0])

	assert.Empty(t, ConvertRegistrationRecords(nil))
}

func TestWriteRegistrationsParquet(t *testing.T) {
	rows := []Registration{
		{Period: "2024-01", Category: "2W", Maker: "Hero", State: "Karnataka", Count: 100},
		{Period: "2024-02", Category: "4W", Maker: "Maruti Suzuki", State: "Delhi", Count: 60},
	}
	path := filepath.Join(t.TempDir(), "registrations.parquet")
	require.NoError(t, WriteRegistrationsParquet(rows, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	back, err := pq.Read[Registration](file, mustSize(t, file))
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}

func mustSize(t *testing.T, f *os.File) int64 {
	t.Helper()
	info, err := f.Stat()
	require.NoError(t, err)
	return info.Size()
}

func TestWriteRegistrationsParquetBadPath(t *testing.T) {
	err := WriteRegistrationsParquet(nil, filepath.Join(t.TempDir(), "missing", "out.parquet"))
	assert.Error(t, err)
}
