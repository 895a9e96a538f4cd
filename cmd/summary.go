package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vahanlens/vahanlens/core"
	"github.com/vahanlens/vahanlens/internal/contract"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize registration totals by dimension",
	Long: `Aggregate registration counts over the selected window and group them
by any combination of period, category, maker and state.

Each group reports its total registrations, the number of underlying
records and the mean registrations per record.`,
	Example: `  vahanlens summary
  vahanlens summary --category 2W --group-by maker
  vahanlens summary --from 2024-01 --to 2024-12 --group-by category,state --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, storeManager.GetRecordStore()); err != nil {
			contract.LogFatal("running summary report", err)
		}
	},
}
