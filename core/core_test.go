package core

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/internal/regstore"
	"github.com/vahanlens/vahanlens/schema"
)

func testConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		GroupBy:     []schema.Dimension{schema.DimPeriod, schema.DimCategory},
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Output:      schema.JSONOut,
		OutputFile:  filepath.Join(t.TempDir(), "out.json"),
		TopBy:       schema.TopByMaker,
		TopGrain:    schema.MonthGrain,
	}
}

func testRecords(t *testing.T) []schema.RegistrationRecord {
	t.Helper()
	return []schema.RegistrationRecord{
		rec(t, "2023-01", schema.TwoWheeler, "Hero", "Karnataka", 100),
		rec(t, "2024-01", schema.TwoWheeler, "Hero", "Karnataka", 120),
		rec(t, "2024-01", schema.FourWheeler, "Hyundai", "Delhi", 50),
	}
}

func TestExecutors(t *testing.T) {
	executors := []struct {
		name string
		run  ExecutorFunc
	}{
		{name: "summary", run: ExecuteSummary},
		{name: "growth yoy", run: ExecuteGrowthYoY},
		{name: "growth qoq", run: ExecuteGrowthQoQ},
		{name: "share", run: ExecuteShare},
		{name: "trends", run: ExecuteTrends},
		{name: "top", run: ExecuteTop},
	}
	for _, tt := range executors {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			store := new(regstore.MockRecordStore)
			store.On("QueryRecords", mock.Anything, cfg.Filter).Return(testRecords(t), nil)

			err := tt.run(t.Context(), cfg, store)
			require.NoError(t, err)
			store.AssertExpectations(t)

			data, err := os.ReadFile(cfg.OutputFile)
			require.NoError(t, err)
			assert.True(t, json.Valid(data), "output file holds valid JSON")
		})
	}
}

func TestExecutorsStoreError(t *testing.T) {
	cfg := testConfig(t)
	store := new(regstore.MockRecordStore)
	store.On("QueryRecords", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	err := ExecuteSummary(t.Context(), cfg, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load registrations")
}

func TestExecuteGrowthYoYOutput(t *testing.T) {
	cfg := testConfig(t)
	store := new(regstore.MockRecordStore)
	store.On("QueryRecords", mock.Anything, cfg.Filter).Return(testRecords(t), nil)

	require.NoError(t, ExecuteGrowthYoY(t.Context(), cfg, store))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var result schema.GrowthResult
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result.Points, 3)

	var hero2024 *schema.GrowthPoint
	for i, p := range result.Points {
		if p.Period.String() == "2024-01" && p.Category == schema.TwoWheeler {
			hero2024 = &result.Points[i]
		}
	}
	require.NotNil(t, hero2024)
	require.True(t, hero2024.Growth.Valid)
	assert.InDelta(t, 20.0, hero2024.Growth.Value, 1e-9)
}

func TestWithPeriod(t *testing.T) {
	got := withPeriod([]schema.Dimension{schema.DimMaker})
	assert.Equal(t, []schema.Dimension{schema.DimPeriod, schema.DimMaker}, got)

	unchanged := []schema.Dimension{schema.DimMaker, schema.DimPeriod}
	assert.Equal(t, unchanged, withPeriod(unchanged))
}

func TestTail(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{4, 5}, tail(s, 2))
	assert.Equal(t, s, tail(s, 10))
	assert.Equal(t, s, tail(s, 0))
}
