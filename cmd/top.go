package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vahanlens/vahanlens/core"
	"github.com/vahanlens/vahanlens/internal/contract"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Rank top performers in the latest time bucket",
	Long: `Rank manufacturers or categories by total registrations within the
most recent complete time bucket of the selected window.

Choose the ranking dimension with --by (maker or category) and the
bucket size with --grain (month, quarter or year).`,
	Example: `  vahanlens top
  vahanlens top --by category --grain quarter
  vahanlens top --category 2W --grain year --limit 5`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTop(rootCtx, cfg, storeManager.GetRecordStore()); err != nil {
			contract.LogFatal("running top performers report", err)
		}
	},
}
