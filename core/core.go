// Package core has the aggregation, growth and market share engine.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/internal/outwriter"
	"github.com/vahanlens/vahanlens/schema"
)

// ErrInvalidInput marks rejected inputs: inverted filter bounds, unknown
// categories or dimensions, invalid periods and negative counts. Callers
// match it with errors.Is to map bad requests to user-facing errors.
var ErrInvalidInput = errors.New("invalid input")

// ExecutorFunc defines the function signature for executing different report modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, store contract.RecordStore) error

// ExecuteSummary runs the aggregation report and prints results to stdout.
// It serves as the main entry point for the 'summary' command.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, store contract.RecordStore) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, store)
	if err != nil {
		return err
	}
	result, err := Summary(records, cfg.Filter, cfg.GroupBy)
	if err != nil {
		return err
	}
	if len(result.Points) > cfg.ResultLimit {
		result.Points = result.Points[:cfg.ResultLimit]
	}
	return outwriter.PrintSummaryResult(result, cfg, time.Since(start))
}

// ExecuteGrowthYoY runs the year-over-year growth report and prints results
// to stdout. It serves as the main entry point for 'growth yoy'.
func ExecuteGrowthYoY(ctx context.Context, cfg *contract.Config, store contract.RecordStore) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, store)
	if err != nil {
		return err
	}
	points, err := Aggregate(records, cfg.Filter, withPeriod(cfg.GroupBy))
	if err != nil {
		return err
	}
	growth, err := YearOverYear(points)
	if err != nil {
		return err
	}
	result := schema.GrowthResult{GroupBy: cfg.GroupBy, Points: tail(growth, cfg.ResultLimit)}
	return outwriter.PrintGrowthResult(result, cfg, time.Since(start))
}

// ExecuteGrowthQoQ runs the quarter-over-quarter growth report and prints
// results to stdout. It serves as the main entry point for 'growth qoq'.
func ExecuteGrowthQoQ(ctx context.Context, cfg *contract.Config, store contract.RecordStore) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, store)
	if err != nil {
		return err
	}
	points, err := Aggregate(records, cfg.Filter, withPeriod(cfg.GroupBy))
	if err != nil {
		return err
	}
	growth, err := QuarterOverQuarter(points)
	if err != nil {
		return err
	}
	result := schema.QuarterGrowthResult{GroupBy: cfg.GroupBy, Points: tail(growth, cfg.ResultLimit)}
	return outwriter.PrintQuarterGrowthResult(result, cfg, time.Since(start))
}

// ExecuteShare runs the market share report and prints results to stdout.
// It serves as the main entry point for the 'share' command.
func ExecuteShare(ctx context.Context, cfg *contract.Config, store contract.RecordStore) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, store)
	if err != nil {
		return err
	}
	groupBy := []schema.Dimension{schema.DimPeriod, schema.DimCategory, schema.DimMaker}
	points, err := Aggregate(records, cfg.Filter, groupBy)
	if err != nil {
		return err
	}
	shares, err := MarketShare(points)
	if err != nil {
		return err
	}
	result := schema.ShareResult{Points: tail(shares, cfg.ResultLimit)}
	return outwriter.PrintShareResult(result, cfg, time.Since(start))
}

// ExecuteTrends runs the trend statistics report and prints results to
// stdout. It serves as the main entry point for the 'trends' command.
func ExecuteTrends(ctx context.Context, cfg *contract.Config, store contract.RecordStore) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, store)
	if err != nil {
		return err
	}
	stats, err := TrendStats(records, cfg.Filter)
	if err != nil {
		return err
	}
	return outwriter.PrintTrendStats(stats, cfg, time.Since(start))
}

// ExecuteTop runs the top performers report and prints results to stdout.
// It serves as the main entry point for the 'top' command.
func ExecuteTop(ctx context.Context, cfg *contract.Config, store contract.RecordStore) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, store)
	if err != nil {
		return err
	}
	result, err := TopPerformers(records, cfg.Filter, cfg.TopBy, cfg.TopGrain, cfg.ResultLimit)
	if err != nil {
		return err
	}
	return outwriter.PrintTopResult(result, cfg, time.Since(start))
}

// loadRecords pulls the filtered registration slice from the store.
func loadRecords(ctx context.Context, cfg *contract.Config, store contract.RecordStore) ([]schema.RegistrationRecord, error) {
	records, err := store.QueryRecords(ctx, cfg.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations: %w", err)
	}
	return records, nil
}

// withPeriod guarantees the period dimension in a grouping, since growth is
// meaningless without a time axis.
func withPeriod(groupBy []schema.Dimension) []schema.Dimension {
	for _, d := range groupBy {
		if d == schema.DimPeriod {
			return groupBy
		}
	}
	out := make([]schema.Dimension, 0, len(groupBy)+1)
	out = append(out, schema.DimPeriod)
	out = append(out, groupBy...)
	return out
}

// tail keeps the most recent n elements of a chronologically sorted slice.
func tail[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
