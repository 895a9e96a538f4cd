package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/schema"
)

func outputConfig(t *testing.T, mode schema.OutputMode) *contract.Config {
	t.Helper()
	return &contract.Config{
		ResultLimit:  contract.DefaultResultLimit,
		Precision:    1,
		Output:       mode,
		OutputFile:   filepath.Join(t.TempDir(), "out"),
		Width:        100,
		StoreBackend: schema.SQLiteBackend,
	}
}

func readOutput(t *testing.T, cfg *contract.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	return string(data)
}

func sampleGrowthResult() schema.GrowthResult {
	return schema.GrowthResult{
		GroupBy: []schema.Dimension{schema.DimPeriod, schema.DimCategory},
		Points: []schema.GrowthPoint{
			{
				Period:   schema.Period{Year: 2024, Month: 1},
				Category: schema.TwoWheeler,
				Total:    1200,
				Growth:   schema.Percent{Value: 20, Valid: true},
			},
			{
				Period:   schema.Period{Year: 2024, Month: 2},
				Category: schema.TwoWheeler,
				Total:    900,
				Growth:   schema.NotComputable(),
			},
		},
	}
}

func TestPrintGrowthResultCSV(t *testing.T) {
	cfg := outputConfig(t, schema.CSVOut)
	require.NoError(t, PrintGrowthResult(sampleGrowthResult(), cfg, time.Millisecond))

	rows, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"period", "category", "maker", "state", "total", "yoy_growth", "label"}, rows[0])
	assert.Equal(t, []string{"2024-01", "2W", "", "", "1200", "20.0", "Gain"}, rows[1])
	assert.Equal(t, "n/a", rows[2][5], "missing baseline renders as n/a")
	assert.Equal(t, "n/a", rows[2][6])
}

func TestPrintGrowthResultJSON(t *testing.T) {
	cfg := outputConfig(t, schema.JSONOut)
	require.NoError(t, PrintGrowthResult(sampleGrowthResult(), cfg, time.Millisecond))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &decoded))

	points := decoded["points"].([]any)
	require.Len(t, points, 2)
	first := points[0].(map[string]any)
	assert.Equal(t, "2024-01", first["period"])
	assert.InDelta(t, 20.0, first["growth"].(float64), 1e-9)

	second := points[1].(map[string]any)
	assert.Nil(t, second["growth"], "not computable encodes as null")
}

func TestPrintGrowthResultTable(t *testing.T) {
	cfg := outputConfig(t, schema.TextOut)
	cfg.UseColors = false
	require.NoError(t, PrintGrowthResult(sampleGrowthResult(), cfg, time.Millisecond))

	out := readOutput(t, cfg)
	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "Gain")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "Showing 2 year-over-year points")
}

func TestPrintQuarterGrowthResultCSV(t *testing.T) {
	cfg := outputConfig(t, schema.CSVOut)
	result := schema.QuarterGrowthResult{
		GroupBy: []schema.Dimension{schema.DimPeriod},
		Points: []schema.QuarterGrowthPoint{
			{Quarter: schema.Quarter{Year: 2024, Q: 2}, Total: 300, Growth: schema.Percent{Value: -10, Valid: true}},
		},
	}
	require.NoError(t, PrintQuarterGrowthResult(result, cfg, time.Millisecond))

	rows, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-Q2", rows[1][0])
	assert.Equal(t, "-10.0", rows[1][5])
	assert.Equal(t, "Decline", rows[1][6])
}

func TestPrintSummaryResultCSV(t *testing.T) {
	cfg := outputConfig(t, schema.CSVOut)
	result := schema.SummaryResult{
		GroupBy: []schema.Dimension{schema.DimCategory, schema.DimMaker},
		Points: []schema.SummaryPoint{
			{
				AggregatedPoint: schema.AggregatedPoint{Category: schema.TwoWheeler, Maker: "Hero", Total: 160},
				Records:         2,
				Mean:            80,
			},
		},
	}
	require.NoError(t, PrintSummaryResult(result, cfg, time.Millisecond))

	rows, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"rank", "period", "category", "maker", "state", "total", "records", "mean"}, rows[0])
	assert.Equal(t, []string{"1", "", "2W", "Hero", "", "160", "2", "80.0"}, rows[1])
}

func TestPrintSummaryResultTableColumns(t *testing.T) {
	cfg := outputConfig(t, schema.TextOut)
	result := schema.SummaryResult{
		GroupBy: []schema.Dimension{schema.DimMaker},
		Points: []schema.SummaryPoint{
			{AggregatedPoint: schema.AggregatedPoint{Maker: "Hero", Total: 100}, Records: 1, Mean: 100},
		},
	}
	require.NoError(t, PrintSummaryResult(result, cfg, time.Millisecond))

	out := readOutput(t, cfg)
	assert.Contains(t, out, "Maker")
	assert.NotContains(t, out, "Category", "ungrouped dimensions get no column")
	assert.Contains(t, out, "Showing 1 groups (total registrations: 100)")
}

func TestPrintShareResultCSV(t *testing.T) {
	cfg := outputConfig(t, schema.CSVOut)
	result := schema.ShareResult{
		Points: []schema.SharePoint{
			{
				Period:        schema.Period{Year: 2024, Month: 1},
				Category:      schema.TwoWheeler,
				Maker:         "Hero",
				Total:         600,
				CategoryTotal: 1000,
				Share:         schema.Percent{Value: 60, Valid: true},
			},
		},
	}
	require.NoError(t, PrintShareResult(result, cfg, time.Millisecond))

	rows, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"period", "category", "maker", "total", "category_total", "share"}, rows[0])
	assert.Equal(t, []string{"2024-01", "2W", "Hero", "600", "1000", "60.0"}, rows[1])
}

func TestPrintTrendStats(t *testing.T) {
	stats := schema.TrendStats{
		TotalRegistrations: 450,
		AvgMonthly:         150,
		OverallGrowth:      schema.Percent{Value: 50, Valid: true},
		Volatility:         50,
		Months: []schema.TrendMonth{
			{Period: schema.Period{Year: 2024, Month: 1}, Total: 100},
			{Period: schema.Period{Year: 2024, Month: 2}, Total: 200},
			{Period: schema.Period{Year: 2024, Month: 3}, Total: 150},
		},
	}

	cfg := outputConfig(t, schema.TextOut)
	require.NoError(t, PrintTrendStats(stats, cfg, time.Millisecond))
	out := readOutput(t, cfg)
	assert.Contains(t, out, "Total registrations: 450")
	assert.Contains(t, out, "Overall growth:      50.0%")

	cfg = outputConfig(t, schema.CSVOut)
	require.NoError(t, PrintTrendStats(stats, cfg, time.Millisecond))
	rows, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"month", "total"}, rows[0])
	assert.Equal(t, []string{"2024-02", "200"}, rows[2])
}

func TestPrintTopResult(t *testing.T) {
	result := schema.TopResult{
		By:     schema.TopByMaker,
		Grain:  schema.MonthGrain,
		Bucket: "2024-02",
		Entries: []schema.TopEntry{
			{Rank: 1, Category: schema.TwoWheeler, Maker: "Hero", Total: 500},
			{Rank: 2, Category: schema.FourWheeler, Maker: "Maruti Suzuki", Total: 400},
		},
	}

	cfg := outputConfig(t, schema.TextOut)
	require.NoError(t, PrintTopResult(result, cfg, time.Millisecond))
	out := readOutput(t, cfg)
	assert.Contains(t, out, "Top maker by total registrations in 2024-02")
	assert.Contains(t, out, "Hero")

	cfg = outputConfig(t, schema.CSVOut)
	require.NoError(t, PrintTopResult(result, cfg, time.Millisecond))
	rows, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"rank", "bucket", "category", "maker", "total"}, rows[0])
	assert.Equal(t, []string{"1", "2024-02", "2W", "Hero", "500"}, rows[1])
}

func TestPrintStoreStatus(t *testing.T) {
	status := schema.StoreStatus{
		Backend:      "sqlite",
		Connected:    true,
		TotalRecords: 4,
		FirstPeriod:  schema.Period{Year: 2023, Month: 12},
		LastPeriod:   schema.Period{Year: 2024, Month: 2},
	}
	stats := schema.DatasetStats{
		TotalRecords:       4,
		TotalRegistrations: 330,
		UniqueMakers:       3,
		UniqueStates:       3,
	}

	cfg := outputConfig(t, schema.TextOut)
	require.NoError(t, PrintStoreStatus(status, stats, cfg))
	out := readOutput(t, cfg)
	assert.Contains(t, out, "Backend:       sqlite")
	assert.Contains(t, out, "Period range:  2023-12 to 2024-02")
	assert.Contains(t, out, "Registrations: 330")

	cfg = outputConfig(t, schema.JSONOut)
	require.NoError(t, PrintStoreStatus(status, stats, cfg))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &decoded))
	assert.Contains(t, decoded, "status")
	assert.Contains(t, decoded, "stats")
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "narrow clamps to minimum", width: 50, want: 12},
		{name: "mid range uses available", width: 80, want: 30},
		{name: "wide clamps to maximum", width: 200, want: 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, GetMaxTableNameWidth(cfg))
		})
	}
}

func TestCellFormatters(t *testing.T) {
	assert.Equal(t, "0", formatCount(0))
	assert.Equal(t, "1234567", formatCount(1234567))

	onePlace := floatFormatter(1)
	assert.Equal(t, "80.0", onePlace(80))
	assert.Equal(t, "33.3", onePlace(33.333))

	twoPlaces := floatFormatter(2)
	assert.Equal(t, "33.33", twoPlaces(33.333))
}
