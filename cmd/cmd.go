// Package cmd has the command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/schema"
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags shared by every analytics command.
	rootCmd.PersistentFlags().String("from", "", "Start period as YYYY-MM (inclusive)")
	rootCmd.PersistentFlags().String("to", "", "End period as YYYY-MM (inclusive)")
	rootCmd.PersistentFlags().StringP("category", "c", "", "Vehicle category filter (2W, 3W or 4W)")
	rootCmd.PersistentFlags().StringP("maker", "m", "", "Comma-separated list of manufacturers")
	rootCmd.PersistentFlags().StringP("state", "s", "", "Comma-separated list of states")
	rootCmd.PersistentFlags().StringP("group-by", "g", "", "Comma-separated dimensions: period, category, maker, state")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Max number of result rows")
	rootCmd.PersistentFlags().IntP("precision", "p", contract.DefaultPrecision, "Decimal places for percentages (1 or 2)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output mode: text, csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Write output to file instead of stdout")
	rootCmd.PersistentFlags().Int("width", 0, "Override detected terminal width")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Store backend: sqlite, mysql, postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Connection string for mysql or postgresql backends")
	rootCmd.PersistentFlags().String("color", "yes", "Colorize growth labels: yes or no")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $HOME/.vahanlens.yaml)")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("binding global flags", err)
	}

	topCmd.Flags().String("by", string(schema.TopByMaker), "Ranking dimension: maker or category")
	topCmd.Flags().String("grain", string(schema.MonthGrain), "Time bucket: month, quarter or year")
	if err := viper.BindPFlags(topCmd.Flags()); err != nil {
		contract.LogFatal("binding top flags", err)
	}

	seedCmd.Flags().Int64("seed", contract.DefaultSeedValue, "Seed value for deterministic data generation")
	if err := viper.BindPFlags(seedCmd.Flags()); err != nil {
		contract.LogFatal("binding seed flags", err)
	}

	serveCmd.Flags().String("addr", contract.DefaultServeAddr, "Listen address for the HTTP API")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("binding serve flags", err)
	}

	storeMigrateCmd.Flags().Int("target-version", -1, "Migrate to a specific schema version (-1 latest, 0 teardown)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("binding migrate flags", err)
	}

	growthCmd.AddCommand(growthYoYCmd)
	growthCmd.AddCommand(growthQoQCmd)

	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(growthCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
