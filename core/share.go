package core

import (
	"sort"

	"github.com/vahanlens/vahanlens/schema"
)

// categorySlice identifies one (period, category) market.
type categorySlice struct {
	period   schema.Period
	category schema.Category
}

// MarketShare derives each maker's share of its category total per period.
// Input points are expected grouped by (period, category, maker); state is
// ignored if present. Shares within one (period, category) slice sum to 100
// within floating-point tolerance. A zero category total makes every share
// in that slice not computable rather than a division failure.
func MarketShare(points []schema.AggregatedPoint) ([]schema.SharePoint, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	makerTotals := make(map[categorySlice]map[string]int64)
	for _, p := range points {
		slice := categorySlice{period: p.Period, category: p.Category}
		if makerTotals[slice] == nil {
			makerTotals[slice] = make(map[string]int64)
		}
		makerTotals[slice][p.Maker] += p.Total
	}

	var out []schema.SharePoint
	for slice, makers := range makerTotals {
		var categoryTotal int64
		for _, total := range makers {
			categoryTotal += total
		}
		for maker, total := range makers {
			share := schema.NotComputable()
			if categoryTotal != 0 {
				share = schema.PercentOf(float64(total), float64(categoryTotal))
			}
			out = append(out, schema.SharePoint{
				Period:        slice.period,
				Category:      slice.category,
				Maker:         maker,
				Total:         total,
				CategoryTotal: categoryTotal,
				Share:         share,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.Period.Compare(b.Period); c != 0 {
			return c < 0
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Maker < b.Maker
	})
	return out, nil
}
