package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vahanlens/vahanlens/core"
	"github.com/vahanlens/vahanlens/internal/contract"
)

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Compute growth rates over time",
	Long: `Compute registration growth rates for the selected window.

Use the 'yoy' subcommand for year-over-year growth (each month against
the same month one year earlier) or 'qoq' for quarter-over-quarter
growth (each calendar quarter against the previous one).`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var growthYoYCmd = &cobra.Command{
	Use:   "yoy",
	Short: "Year-over-year growth per month",
	Long: `Compare each month's registration total against the same month one
year earlier, per group. Months without a baseline a year back report
no growth value rather than a misleading zero.`,
	Example: `  vahanlens growth yoy --category 2W
  vahanlens growth yoy --from 2023-01 --to 2024-12 --group-by category,maker
  vahanlens growth yoy --maker "Hero,Honda" --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGrowthYoY(rootCtx, cfg, storeManager.GetRecordStore()); err != nil {
			contract.LogFatal("running YoY growth report", err)
		}
	},
}

var growthQoQCmd = &cobra.Command{
	Use:   "qoq",
	Short: "Quarter-over-quarter growth",
	Long: `Bucket monthly registrations into calendar quarters and compare each
quarter's total against the immediately preceding quarter, per group.
The first quarter of a year compares against Q4 of the prior year.`,
	Example: `  vahanlens growth qoq --category 4W
  vahanlens growth qoq --from 2023-01 --to 2024-12 --group-by category
  vahanlens growth qoq --state Maharashtra --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGrowthQoQ(rootCtx, cfg, storeManager.GetRecordStore()); err != nil {
			contract.LogFatal("running QoQ growth report", err)
		}
	},
}
