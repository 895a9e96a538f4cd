package core

import (
	"github.com/vahanlens/vahanlens/schema"
)

// Summary aggregates registrations and annotates every group with the number
// of contributing records and the mean count per record.
func Summary(records []schema.RegistrationRecord, filter schema.FilterSpec, groupBy []schema.Dimension) (schema.SummaryResult, error) {
	points, err := Aggregate(records, filter, groupBy)
	if err != nil {
		return schema.SummaryResult{}, err
	}

	dims, err := dimensionSet(groupBy)
	if err != nil {
		return schema.SummaryResult{}, err
	}
	counts := make(map[groupKey]int64)
	for _, r := range records {
		if !filter.Matches(r) {
			continue
		}
		counts[keyFor(r, dims)]++
	}

	result := schema.SummaryResult{GroupBy: groupBy}
	result.Points = make([]schema.SummaryPoint, 0, len(points))
	for _, p := range points {
		n := counts[groupKey{period: p.Period, category: p.Category, maker: p.Maker, state: p.State}]
		sp := schema.SummaryPoint{AggregatedPoint: p, Records: n}
		if n > 0 {
			sp.Mean = float64(p.Total) / float64(n)
		}
		result.Points = append(result.Points, sp)
	}
	return result, nil
}
