package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/schema"
)

// PrintTrendStats outputs the trend statistics, dispatching based on the
// output format configured.
func PrintTrendStats(stats schema.TrendStats, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, stats)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsCSV(w, stats)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsTable(w, stats, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// writeTrendsTable prints the headline stats followed by the monthly series.
func writeTrendsTable(w io.Writer, stats schema.TrendStats, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Total registrations: %d\n", stats.TotalRegistrations); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Average monthly:     %s\n", fmtFloat(stats.AvgMonthly)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Overall growth:      %s%%\n", stats.OverallGrowth.Format(cfg.Precision)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Volatility:          %s\n", fmtFloat(stats.Volatility)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Month", "Total"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range stats.Months {
		data = append(data, []string{m.Period.String(), formatCount(m.Total)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Report completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeTrendsCSV writes the monthly trend series in CSV format.
func writeTrendsCSV(w io.Writer, stats schema.TrendStats) error {
	header := []string{"month", "total"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range stats.Months {
			if err := cw.Write([]string{m.Period.String(), formatCount(m.Total)}); err != nil {
				return err
			}
		}
		return nil
	})
}
