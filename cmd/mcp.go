package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server over stdio",
	Long: `Run VahanLens as a Model Context Protocol server so AI assistants can
query registration analytics directly.

Exposed tools: get_growth, get_market_share, get_summary and
get_trends. The server speaks MCP over stdin/stdout, so wire it into
your assistant's MCP configuration rather than running it by hand.`,
	Example: `  vahanlens mcp
  vahanlens mcp --store-backend sqlite`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartMCPServer(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("running MCP server", err)
		}
	},
}
