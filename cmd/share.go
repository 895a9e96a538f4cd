package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vahanlens/vahanlens/core"
	"github.com/vahanlens/vahanlens/internal/contract"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Compute manufacturer market share",
	Long: `Compute each manufacturer's share of its vehicle category, per month.

Share is the maker's registrations divided by the category total for
that month, so shares within one period and category always sum to
100 percent.`,
	Example: `  vahanlens share --category 2W
  vahanlens share --from 2024-01 --to 2024-06 --maker "Maruti Suzuki,Hyundai"
  vahanlens share --category 4W --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteShare(rootCtx, cfg, storeManager.GetRecordStore()); err != nil {
			contract.LogFatal("running market share report", err)
		}
	},
}
