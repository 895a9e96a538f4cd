package outwriter

import (
	"fmt"
	"io"

	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/schema"
)

// PrintStoreStatus outputs the record store status, dispatching based on the
// output format configured. CSV falls back to the text rendering since the
// status is a single object, not a series.
func PrintStoreStatus(status schema.StoreStatus, stats schema.DatasetStats, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Status schema.StoreStatus  `json:"status"`
				Stats  schema.DatasetStats `json:"stats"`
			}{Status: status, Stats: stats})
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Backend:       %s\n", status.Backend); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Connected:     %t\n", status.Connected); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Total records: %d\n", status.TotalRecords); err != nil {
			return err
		}
		if status.TotalRecords == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(w, "Period range:  %s to %s\n", status.FirstPeriod, status.LastPeriod); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Registrations: %d\n", stats.TotalRegistrations); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Makers:        %d\n", stats.UniqueMakers); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "States:        %d\n", stats.UniqueStates); err != nil {
			return err
		}
		return nil
	}, "Wrote status")
}
