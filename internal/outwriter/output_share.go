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

// PrintShareResult outputs the market-share series, dispatching based on the
// output format configured.
func PrintShareResult(result schema.ShareResult, cfg *contract.Config, duration time.Duration) error {

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeShareCSV(w, result, cfg)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeShareTable(w, result, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeShareTable generates and writes the human-readable share table.
func writeShareTable(w io.Writer, result schema.ShareResult, cfg *contract.Config, duration time.Duration) error {
	nameWidth := GetMaxTableNameWidth(cfg)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Period", "Category", "Maker", "Total", "Category Total", "Share %"})

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range result.Points {
		data = append(data, []string{
			p.Period.String(),
			string(p.Category),
			contract.TruncateName(p.Maker, nameWidth),
			formatCount(p.Total),
			formatCount(p.CategoryTotal),
			p.Share.Format(cfg.Precision),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d market-share points\n", len(result.Points)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Report completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeShareCSV writes the share series in CSV format.
func writeShareCSV(w io.Writer, result schema.ShareResult, cfg *contract.Config) error {
	header := []string{"period", "category", "maker", "total", "category_total", "share"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range result.Points {
			rec := []string{
				p.Period.String(),
				string(p.Category),
				p.Maker,
				formatCount(p.Total),
				formatCount(p.CategoryTotal),
				p.Share.Format(cfg.Precision),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
