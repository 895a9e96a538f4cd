package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/internal/outwriter"
	"github.com/vahanlens/vahanlens/internal/regstore"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the registration store",
	Long: `Inspect and maintain the persistence layer that backs all analytics
commands. Subcommands report store status, clear stored data, run
schema migrations and export records to Parquet.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store backend status and dataset statistics",
	Example: `  vahanlens store status
  vahanlens store status --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetRecordStore()
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("checking store status", err)
		}
		stats, err := store.Stats(rootCtx)
		if err != nil {
			contract.LogFatal("reading dataset stats", err)
		}
		if err := outwriter.PrintStoreStatus(status, stats, cfg); err != nil {
			contract.LogFatal("printing store status", err)
		}
	},
}

var storeClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove all stored registration data",
	Example: `  vahanlens store clear`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		regstore.CloseStore()
		err := regstore.ClearStore(cfg.StoreBackend, regstore.GetDBFilePath(), cfg.StoreDBConnect)
		if err != nil {
			contract.LogFatal("clearing store", err)
		}
		fmt.Println("🗑️ Store cleared")
	},
}

var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the store",
	Long: `Apply schema migrations to the configured store backend.

By default migrates up to the latest version. Use --target-version to
migrate to a specific version, or 0 to tear the schema down.`,
	Example: `  vahanlens store migrate
  vahanlens store migrate --target-version 0`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := regstore.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("running migrations", err)
		}
	},
}

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored records to a Parquet file",
	Long: `Export all stored registration records to a Parquet file for use in
Spark, Pandas, DuckDB or any other columnar tooling. Requires
--output-file.`,
	Example: `  vahanlens store export --output-file registrations.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := regstore.ExecuteStoreExport(rootCtx, cfg.OutputFile); err != nil {
			contract.LogFatal("exporting store", err)
		}
	},
}
