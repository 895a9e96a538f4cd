package core

import (
	"math"

	"github.com/vahanlens/vahanlens/schema"
)

// TrendStats computes monthly trend statistics for the filtered slice:
// total and average monthly registrations, the overall growth from the
// first to the last month of the window, and volatility as the sample
// standard deviation of monthly totals. A window with fewer than two
// months has not-computable overall growth and zero volatility.
func TrendStats(records []schema.RegistrationRecord, filter schema.FilterSpec) (schema.TrendStats, error) {
	points, err := Aggregate(records, filter, []schema.Dimension{schema.DimPeriod})
	if err != nil {
		return schema.TrendStats{}, err
	}

	stats := schema.TrendStats{Months: make([]schema.TrendMonth, 0, len(points))}
	for _, p := range points {
		stats.TotalRegistrations += p.Total
		stats.Months = append(stats.Months, schema.TrendMonth{Period: p.Period, Total: p.Total})
	}
	if len(points) == 0 {
		stats.OverallGrowth = schema.NotComputable()
		return stats, nil
	}

	n := float64(len(points))
	stats.AvgMonthly = float64(stats.TotalRegistrations) / n

	first, last := points[0].Total, points[len(points)-1].Total
	if len(points) < 2 {
		stats.OverallGrowth = schema.NotComputable()
	} else {
		stats.OverallGrowth = schema.GrowthBetween(last, first)
	}

	if len(points) >= 2 {
		var sumSq float64
		for _, p := range points {
			d := float64(p.Total) - stats.AvgMonthly
			sumSq += d * d
		}
		stats.Volatility = math.Sqrt(sumSq / (n - 1))
	}
	return stats, nil
}
