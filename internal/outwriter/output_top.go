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

// PrintTopResult outputs the top performers ranking, dispatching based on
// the output format configured.
func PrintTopResult(result schema.TopResult, cfg *contract.Config, duration time.Duration) error {

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTopCSV(w, result)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTopTable(w, result, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeTopTable generates and writes the human-readable ranking table.
func writeTopTable(w io.Writer, result schema.TopResult, cfg *contract.Config, duration time.Duration) error {
	nameWidth := GetMaxTableNameWidth(cfg)

	if _, err := fmt.Fprintf(w, "Top %s by total registrations in %s\n", result.By, result.Bucket); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	headers := []string{"Rank", "Category"}
	if result.By == schema.TopByMaker {
		headers = append(headers, "Maker")
	}
	headers = append(headers, "Total")
	table.Header(headers)

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, e := range result.Entries {
		row := []string{strconv.Itoa(e.Rank), string(e.Category)}
		if result.By == schema.TopByMaker {
			row = append(row, contract.TruncateName(e.Maker, nameWidth))
		}
		row = append(row, formatCount(e.Total))
		data = append(data, row)
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

// writeTopCSV writes the ranking in CSV format.
func writeTopCSV(w io.Writer, result schema.TopResult) error {
	header := []string{"rank", "bucket", "category", "maker", "total"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range result.Entries {
			rec := []string{
				strconv.Itoa(e.Rank),
				result.Bucket,
				string(e.Category),
				e.Maker,
				formatCount(e.Total),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
