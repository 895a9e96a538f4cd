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

// PrintGrowthResult outputs the year-over-year growth series, dispatching
// based on the output format configured.
func PrintGrowthResult(result schema.GrowthResult, cfg *contract.Config, duration time.Duration) error {

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGrowthCSV(w, result, cfg)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGrowthTable(w, result, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeGrowthTable generates and writes the human-readable YoY table.
func writeGrowthTable(w io.Writer, result schema.GrowthResult, cfg *contract.Config, duration time.Duration) error {
	_, hasCategory, hasMaker, hasState := dimColumns(result.GroupBy)
	nameWidth := GetMaxTableNameWidth(cfg)

	table := tablewriter.NewWriter(w)

	headers := []string{"Period"}
	if hasCategory {
		headers = append(headers, "Category")
	}
	if hasMaker {
		headers = append(headers, "Maker")
	}
	if hasState {
		headers = append(headers, "State")
	}
	headers = append(headers, "Total", "YoY %", "Label")
	table.Header(headers)

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range result.Points {
		row := []string{p.Period.String()}
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
			p.Growth.Format(cfg.Precision),
			growthLabel(p.Growth, cfg),
		)
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d year-over-year points\n", len(result.Points)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Report completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeGrowthCSV writes the YoY series in CSV format.
func writeGrowthCSV(w io.Writer, result schema.GrowthResult, cfg *contract.Config) error {
	header := []string{"period", "category", "maker", "state", "total", "yoy_growth", "label"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range result.Points {
			rec := []string{
				p.Period.String(),
				string(p.Category),
				p.Maker,
				p.State,
				formatCount(p.Total),
				p.Growth.Format(cfg.Precision),
				contract.GetPlainGrowthLabel(p.Growth),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// PrintQuarterGrowthResult outputs the quarter-over-quarter growth series,
// dispatching based on the output format configured.
func PrintQuarterGrowthResult(result schema.QuarterGrowthResult, cfg *contract.Config, duration time.Duration) error {

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQuarterGrowthCSV(w, result, cfg)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQuarterGrowthTable(w, result, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeQuarterGrowthTable generates and writes the human-readable QoQ table.
func writeQuarterGrowthTable(w io.Writer, result schema.QuarterGrowthResult, cfg *contract.Config, duration time.Duration) error {
	_, hasCategory, hasMaker, hasState := dimColumns(result.GroupBy)
	nameWidth := GetMaxTableNameWidth(cfg)

	table := tablewriter.NewWriter(w)

	headers := []string{"Quarter"}
	if hasCategory {
		headers = append(headers, "Category")
	}
	if hasMaker {
		headers = append(headers, "Maker")
	}
	if hasState {
		headers = append(headers, "State")
	}
	headers = append(headers, "Total", "QoQ %", "Label")
	table.Header(headers)

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range result.Points {
		row := []string{p.Quarter.String()}
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
			p.Growth.Format(cfg.Precision),
			growthLabel(p.Growth, cfg),
		)
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d quarter-over-quarter points\n", len(result.Points)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Report completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeQuarterGrowthCSV writes the QoQ series in CSV format.
func writeQuarterGrowthCSV(w io.Writer, result schema.QuarterGrowthResult, cfg *contract.Config) error {
	header := []string{"quarter", "category", "maker", "state", "total", "qoq_growth", "label"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range result.Points {
			rec := []string{
				p.Quarter.String(),
				string(p.Category),
				p.Maker,
				p.State,
				formatCount(p.Total),
				p.Growth.Format(cfg.Precision),
				contract.GetPlainGrowthLabel(p.Growth),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// growthLabel picks the colored or plain growth label per config.
func growthLabel(growth schema.Percent, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorGrowthLabel(growth)
	}
	return contract.GetPlainGrowthLabel(growth)
}
