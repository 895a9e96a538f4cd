package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vahanlens/vahanlens/core"
	"github.com/vahanlens/vahanlens/internal/contract"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show headline trend statistics",
	Long: `Collapse the selected window into a single monthly series and report
headline statistics over it: total registrations, average monthly
volume, overall growth from first to last month, and volatility of the
monthly totals.`,
	Example: `  vahanlens trends
  vahanlens trends --category 2W --from 2023-01 --to 2024-12
  vahanlens trends --maker Hero --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrends(rootCtx, cfg, storeManager.GetRecordStore()); err != nil {
			contract.LogFatal("running trends report", err)
		}
	},
}
