package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vahanlens/vahanlens/schema"
)

func TestSummary(t *testing.T) {
	records := []schema.RegistrationRecord{
		rec(t, "2024-01", schema.TwoWheeler, "Hero", "Karnataka", 100),
		rec(t, "2024-01", schema.TwoWheeler, "Hero", "Kerala", 60),
		rec(t, "2024-01", schema.FourWheeler, "Hyundai", "Delhi", 50),
	}
	result, err := Summary(records, schema.FilterSpec{},
		[]schema.Dimension{schema.DimCategory, schema.DimMaker})
	require.NoError(t, err)

	assert.Equal(t, []schema.Dimension{schema.DimCategory, schema.DimMaker}, result.GroupBy)
	require.Len(t, result.Points, 2)

	hero := result.Points[0]
	assert.Equal(t, "Hero", hero.Maker)
	assert.Equal(t, int64(160), hero.Total)
	assert.Equal(t, int64(2), hero.Records)
	assert.InDelta(t, 80.0, hero.Mean, 1e-9)

	hyundai := result.Points[1]
	assert.Equal(t, int64(1), hyundai.Records)
	assert.InDelta(t, 50.0, hyundai.Mean, 1e-9)
}

func TestSummaryFiltered(t *testing.T) {
	records := []schema.RegistrationRecord{
		rec(t, "2024-01", schema.TwoWheeler, "Hero", "Karnataka", 100),
		rec(t, "2024-02", schema.TwoWheeler, "Hero", "Karnataka", 120),
	}
	from := pd(t, "2024-02")
	result, err := Summary(records, schema.FilterSpec{From: &from},
		[]schema.Dimension{schema.DimPeriod})
	require.NoError(t, err)
	require.Len(t, result.Points, 1)
	assert.Equal(t, int64(120), result.Points[0].Total)
	assert.Equal(t, int64(1), result.Points[0].Records)
}

func TestSummaryInvalidDimension(t *testing.T) {
	_, err := Summary(nil, schema.FilterSpec{}, []schema.Dimension{"fuel"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
