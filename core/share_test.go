package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vahanlens/vahanlens/schema"
)

func TestMarketShare(t *testing.T) {
	records := []schema.RegistrationRecord{
		rec(t, "2024-01", schema.TwoWheeler, "Hero", "Karnataka", 600),
		rec(t, "2024-01", schema.TwoWheeler, "Honda", "Karnataka", 300),
		rec(t, "2024-01", schema.TwoWheeler, "TVS", "Karnataka", 100),
		rec(t, "2024-01", schema.FourWheeler, "Maruti Suzuki", "Delhi", 400),
	}
	points, err := Aggregate(records, schema.FilterSpec{},
		[]schema.Dimension{schema.DimPeriod, schema.DimCategory, schema.DimMaker})
	require.NoError(t, err)

	shares, err := MarketShare(points)
	require.NoError(t, err)
	require.Len(t, shares, 4)

	byMaker := make(map[string]schema.SharePoint)
	for _, s := range shares {
		byMaker[s.Maker] = s
	}
	assert.InDelta(t, 60.0, byMaker["Hero"].Share.Value, 1e-9)
	assert.InDelta(t, 30.0, byMaker["Honda"].Share.Value, 1e-9)
	assert.InDelta(t, 10.0, byMaker["TVS"].Share.Value, 1e-9)
	assert.Equal(t, int64(1000), byMaker["Hero"].CategoryTotal)

	// The sole 4W maker owns its whole category.
	assert.InDelta(t, 100.0, byMaker["Maruti Suzuki"].Share.Value, 1e-9)
	assert.Equal(t, int64(400), byMaker["Maruti Suzuki"].CategoryTotal)
}

func TestMarketShareSumsToHundred(t *testing.T) {
	records := []schema.RegistrationRecord{
		rec(t, "2024-01", schema.TwoWheeler, "Hero", "Karnataka", 333),
		rec(t, "2024-01", schema.TwoWheeler, "Honda", "Karnataka", 333),
		rec(t, "2024-01", schema.TwoWheeler, "TVS", "Karnataka", 334),
		rec(t, "2024-02", schema.TwoWheeler, "Hero", "Karnataka", 17),
		rec(t, "2024-02", schema.TwoWheeler, "Honda", "Karnataka", 83),
	}
	points, err := Aggregate(records, schema.FilterSpec{},
		[]schema.Dimension{schema.DimPeriod, schema.DimCategory, schema.DimMaker})
	require.NoError(t, err)

	shares, err := MarketShare(points)
	require.NoError(t, err)

	type slice struct {
		period   schema.Period
		category schema.Category
	}
	sums := make(map[slice]float64)
	for _, s := range shares {
		require.True(t, s.Share.Valid)
		sums[slice{s.Period, s.Category}] += s.Share.Value
	}
	for key, sum := range sums {
		assert.InDelta(t, 100.0, sum, 1e-6, "slice %v/%v", key.period, key.category)
	}
}

func TestMarketShareZeroCategoryTotal(t *testing.T) {
	points := []schema.AggregatedPoint{
		{Period: pd(t, "2024-01"), Category: schema.TwoWheeler, Maker: "Hero", Total: 0},
		{Period: pd(t, "2024-01"), Category: schema.TwoWheeler, Maker: "Honda", Total: 0},
	}
	shares, err := MarketShare(points)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	for _, s := range shares {
		assert.False(t, s.Share.Valid)
		assert.Equal(t, int64(0), s.CategoryTotal)
	}
}

func TestMarketShareOrdering(t *testing.T) {
	points := []schema.AggregatedPoint{
		{Period: pd(t, "2024-02"), Category: schema.TwoWheeler, Maker: "Hero", Total: 10},
		{Period: pd(t, "2024-01"), Category: schema.FourWheeler, Maker: "Tata Motors", Total: 20},
		{Period: pd(t, "2024-01"), Category: schema.TwoWheeler, Maker: "Honda", Total: 30},
		{Period: pd(t, "2024-01"), Category: schema.TwoWheeler, Maker: "Hero", Total: 40},
	}
	shares, err := MarketShare(points)
	require.NoError(t, err)
	require.Len(t, shares, 4)
	assert.Equal(t, "Hero", shares[0].Maker)
	assert.Equal(t, "Honda", shares[1].Maker)
	assert.Equal(t, "Tata Motors", shares[2].Maker)
	assert.Equal(t, pd(t, "2024-02"), shares[3].Period)
}
