package core

import (
	"sort"
	"strconv"

	"github.com/vahanlens/vahanlens/schema"
)

// TopPerformers ranks makers or categories by registration total within the
// latest bucket of the requested grain (month, quarter or year) present in
// the filtered data. Ties break lexicographically so the ranking is stable.
func TopPerformers(records []schema.RegistrationRecord, filter schema.FilterSpec, by schema.TopBy, grain schema.Grain, limit int) (schema.TopResult, error) {
	groupBy := []schema.Dimension{schema.DimPeriod, schema.DimCategory}
	if by == schema.TopByMaker {
		groupBy = append(groupBy, schema.DimMaker)
	}
	points, err := Aggregate(records, filter, groupBy)
	if err != nil {
		return schema.TopResult{}, err
	}

	result := schema.TopResult{By: by, Grain: grain}
	if len(points) == 0 {
		return result, nil
	}

	// Re-bucket monthly points to the requested grain and keep only the
	// latest bucket.
	latest := bucketLabel(points[len(points)-1].Period, grain)
	result.Bucket = latest

	type entryKey struct {
		category schema.Category
		maker    string
	}
	totals := make(map[entryKey]int64)
	for _, p := range points {
		if bucketLabel(p.Period, grain) != latest {
			continue
		}
		totals[entryKey{category: p.Category, maker: p.Maker}] += p.Total
	}

	entries := make([]schema.TopEntry, 0, len(totals))
	for key, total := range totals {
		entries = append(entries, schema.TopEntry{Category: key.category, Maker: key.maker, Total: total})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Maker < b.Maker
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	result.Entries = entries
	return result, nil
}

// bucketLabel renders the grain bucket containing the period.
func bucketLabel(p schema.Period, grain schema.Grain) string {
	switch grain {
	case schema.QuarterGrain:
		return p.Quarter().String()
	case schema.YearGrain:
		return strconv.Itoa(p.Year)
	default:
		return p.String()
	}
}
