package core

import (
	"fmt"
	"sort"

	"github.com/vahanlens/vahanlens/schema"
)

// groupKey identifies one aggregation bucket. Dimensions outside the
// grouping stay zero-valued so that records differing only on summed-over
// axes land in the same bucket.
type groupKey struct {
	period   schema.Period
	category schema.Category
	maker    string
	state    string
}

// Aggregate filters records and sums their counts over the given grouping
// dimensions. It is a pure function: identical inputs yield identical,
// identically ordered output (period ascending, then category, maker, state).
//
// An empty input or a filter matching nothing yields an empty slice, not an
// error. Malformed input (invalid filter bounds, invalid periods, negative
// counts, unknown dimensions) aborts the call with ErrInvalidInput and no
// partial result.
func Aggregate(records []schema.RegistrationRecord, filter schema.FilterSpec, groupBy []schema.Dimension) ([]schema.AggregatedPoint, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	dims, err := dimensionSet(groupBy)
	if err != nil {
		return nil, err
	}

	totals := make(map[groupKey]int64)
	for _, r := range records {
		if !r.Period.Valid() {
			return nil, fmt.Errorf("%w: record has invalid period %v", ErrInvalidInput, r.Period)
		}
		if r.Count < 0 {
			return nil, fmt.Errorf("%w: record %s/%s/%s/%s has negative count %d",
				ErrInvalidInput, r.Period, r.Category, r.Maker, r.State, r.Count)
		}
		if !filter.Matches(r) {
			continue
		}
		// Duplicate source rows for the same tuple sum here as well.
		totals[keyFor(r, dims)] += r.Count
	}

	points := make([]schema.AggregatedPoint, 0, len(totals))
	for key, total := range totals {
		points = append(points, schema.AggregatedPoint{
			Period:   key.period,
			Category: key.category,
			Maker:    key.maker,
			State:    key.state,
			Total:    total,
		})
	}
	sortPoints(points)
	return points, nil
}

// keyFor projects a record onto the grouping dimensions.
func keyFor(r schema.RegistrationRecord, dims map[schema.Dimension]bool) groupKey {
	var key groupKey
	if dims[schema.DimPeriod] {
		key.period = r.Period
	}
	if dims[schema.DimCategory] {
		key.category = r.Category
	}
	if dims[schema.DimMaker] {
		key.maker = r.Maker
	}
	if dims[schema.DimState] {
		key.state = r.State
	}
	return key
}

// dimensionSet validates the grouping dimensions and converts them to a set.
func dimensionSet(groupBy []schema.Dimension) (map[schema.Dimension]bool, error) {
	dims := make(map[schema.Dimension]bool, len(groupBy))
	for _, d := range groupBy {
		if _, ok := schema.ValidDimensions[d]; !ok {
			return nil, fmt.Errorf("%w: unknown grouping dimension %q", ErrInvalidInput, d)
		}
		dims[d] = true
	}
	return dims, nil
}

// sortPoints orders aggregated points deterministically: period ascending,
// then category, maker, state in lexicographic order.
func sortPoints(points []schema.AggregatedPoint) {
	sort.Slice(points, func(i, j int) bool {
		a, b := points[i], points[j]
		if c := a.Period.Compare(b.Period); c != 0 {
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
}
