package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/schema"
)

// PrintSummaryResult outputs the aggregation summary, dispatching based on
// the output format configured.
func PrintSummaryResult(result schema.SummaryResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat := floatFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, result, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// dimColumns reports which dimension columns carry data in the grouping.
func dimColumns(groupBy []schema.Dimension) (period, category, maker, state bool) {
	for _, d := range groupBy {
		switch d {
		case schema.DimPeriod:
			period = true
		case schema.DimCategory:
			category = true
		case schema.DimMaker:
			maker = true
		case schema.DimState:
			state = true
		}
	}
	return period, category, maker, state
}

// writeSummaryTable generates and writes the human-readable table.
func writeSummaryTable(w io.Writer, result schema.SummaryResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	hasPeriod, hasCategory, hasMaker, hasState := dimColumns(result.GroupBy)
	nameWidth := GetMaxTableNameWidth(cfg)

	table := tablewriter.NewWriter(w)

	headers := []string{"Rank"}
	if hasPeriod {
		headers = append(headers, "Period")
	}
	if hasCategory {
		headers = append(headers, "Category")
	}
	if hasMaker {
		headers = append(headers, "Maker")
	}
	if hasState {
		headers = append(headers, "State")
	}
	headers = append(headers, "Total", "Records", "Mean")
	table.Header(headers)

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, p := range result.Points {
		row := []string{strconv.Itoa(i + 1)}
		if hasPeriod {
			row = append(row, p.Period.String())
		}
		if hasCategory {
			row = append(row, string(p.Category))
		}
		if hasMaker {
			row = append(row, contract.TruncateName(p.Maker, nameWidth))
		}
		if hasState {
			row = append(row, contract.TruncateName(p.State, nameWidth))
		}
		row = append(row,
			formatCount(p.Total),
			formatCount(p.Records),
			fmtFloat(p.Mean),
		)
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	var grandTotal int64
	for _, p := range result.Points {
		grandTotal += p.Total
	}
	if _, err := fmt.Fprintf(w, "Showing %d groups (total registrations: %d)\n", len(result.Points), grandTotal); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Report completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeSummaryCSV writes the summary in CSV format.
func writeSummaryCSV(w io.Writer, result schema.SummaryResult, fmtFloat func(float64) string) error {
	header := []string{"rank", "period", "category", "maker", "state", "total", "records", "mean"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, p := range result.Points {
			rec := []string{
				strconv.Itoa(i + 1),
				periodOrEmpty(p.Period),
				string(p.Category),
				p.Maker,
				p.State,
				formatCount(p.Total),
				formatCount(p.Records),
				fmtFloat(p.Mean),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// periodOrEmpty renders a period, or "" when the dimension was summed over.
func periodOrEmpty(p schema.Period) string {
	if p.IsZero() {
		return ""
	}
	return p.String()
}
