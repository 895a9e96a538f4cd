package core

import (
	"fmt"
	"sort"

	"github.com/vahanlens/vahanlens/schema"
)

// seriesKey identifies one comparison series: growth is only ever computed
// between points sharing the same (category, maker, state) slice.
type seriesKey struct {
	category schema.Category
	maker    string
	state    string
}

func seriesOf(p schema.AggregatedPoint) seriesKey {
	return seriesKey{category: p.Category, maker: p.Maker, state: p.State}
}

// monthKey indexes one point within its series for O(1) baseline lookup.
type monthKey struct {
	series seriesKey
	month  int // Period.Index()
}

// YearOverYear derives year-over-year growth for a period-grouped series.
// The baseline for each point is the same calendar month one year earlier
// within the same series; a missing or zero baseline yields a not-computable
// growth value while keeping the point in the output.
func YearOverYear(points []schema.AggregatedPoint) ([]schema.GrowthPoint, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	index := make(map[monthKey]int64, len(points))
	for _, p := range points {
		// Duplicate rows for the same series and month sum in the
		// baseline index.
		index[monthKey{series: seriesOf(p), month: p.Period.Index()}] += p.Total
	}

	out := make([]schema.GrowthPoint, 0, len(points))
	for _, p := range points {
		growth := schema.NotComputable()
		baseline := p.Period.AddMonths(-12)
		if prev, ok := index[monthKey{series: seriesOf(p), month: baseline.Index()}]; ok {
			growth = schema.GrowthBetween(p.Total, prev)
		}
		out = append(out, schema.GrowthPoint{
			Period:   p.Period,
			Category: p.Category,
			Maker:    p.Maker,
			State:    p.State,
			Total:    p.Total,
			Growth:   growth,
		})
	}
	return out, nil
}

// quarterBucket identifies one quarterly total within a series.
type quarterBucket struct {
	series  seriesKey
	quarter schema.Quarter
}

// QuarterOverQuarter buckets monthly points into calendar quarters per
// series and derives growth against each quarter's immediate predecessor,
// crossing year boundaries naturally (Q1 follows the prior year's Q4).
// The first quarter of every series is not computable, as is any quarter
// whose predecessor is absent or had a zero total.
func QuarterOverQuarter(points []schema.AggregatedPoint) ([]schema.QuarterGrowthPoint, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	totals := make(map[quarterBucket]int64)
	for _, p := range points {
		totals[quarterBucket{series: seriesOf(p), quarter: p.Period.Quarter()}] += p.Total
	}

	out := make([]schema.QuarterGrowthPoint, 0, len(totals))
	for bucket, total := range totals {
		growth := schema.NotComputable()
		if prev, ok := totals[quarterBucket{series: bucket.series, quarter: bucket.quarter.Prev()}]; ok {
			growth = schema.GrowthBetween(total, prev)
		}
		out = append(out, schema.QuarterGrowthPoint{
			Quarter:  bucket.quarter,
			Category: bucket.series.category,
			Maker:    bucket.series.maker,
			State:    bucket.series.state,
			Total:    total,
			Growth:   growth,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.Quarter.Compare(b.Quarter); c != 0 {
			return c < 0
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Maker != b.Maker {
			return a.Maker < b.Maker
		}
		return a.State < b.State
	})
	return out, nil
}

// validatePoints rejects points whose period cannot be ordered.
func validatePoints(points []schema.AggregatedPoint) error {
	for _, p := range points {
		if !p.Period.Valid() {
			return fmt.Errorf("%w: point has invalid period %v", ErrInvalidInput, p.Period)
		}
	}
	return nil
}
