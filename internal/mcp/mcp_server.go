// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/vahanlens/vahanlens/internal/contract"
)

// NewMCPServer initializes and configures the VahanLens MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"VahanLens Registration Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_growth ---
	s.AddTool(mcp.NewTool("get_growth",
		mcp.WithDescription("Compute year-over-year or quarter-over-quarter registration growth."),
		mcp.WithString("mode", mcp.Description("Growth mode: 'yoy' or 'qoq'. Defaults to 'yoy'."), mcp.Enum("yoy", "qoq")),
		mcp.WithString("from", mcp.Description("Start period in YYYY-MM form (inclusive).")),
		mcp.WithString("to", mcp.Description("End period in YYYY-MM form (inclusive).")),
		mcp.WithString("category", mcp.Description("Comma-separated vehicle categories (2W, 3W, 4W).")),
		mcp.WithString("maker", mcp.Description("Comma-separated manufacturer names.")),
		mcp.WithString("state", mcp.Description("Comma-separated state names.")),
		mcp.WithString("group_by", mcp.Description("Comma-separated grouping dimensions (period, category, maker, state).")),
	), h.handleGetGrowth)

	// --- 2. Tool: get_market_share ---
	s.AddTool(mcp.NewTool("get_market_share",
		mcp.WithDescription("Compute each maker's share of its category per month."),
		mcp.WithString("from", mcp.Description("Start period in YYYY-MM form (inclusive).")),
		mcp.WithString("to", mcp.Description("End period in YYYY-MM form (inclusive).")),
		mcp.WithString("category", mcp.Description("Comma-separated vehicle categories (2W, 3W, 4W).")),
		mcp.WithString("maker", mcp.Description("Comma-separated manufacturer names.")),
		mcp.WithString("state", mcp.Description("Comma-separated state names.")),
	), h.handleGetMarketShare)

	// --- 3. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Aggregate registration totals over chosen dimensions."),
		mcp.WithString("from", mcp.Description("Start period in YYYY-MM form (inclusive).")),
		mcp.WithString("to", mcp.Description("End period in YYYY-MM form (inclusive).")),
		mcp.WithString("category", mcp.Description("Comma-separated vehicle categories (2W, 3W, 4W).")),
		mcp.WithString("maker", mcp.Description("Comma-separated manufacturer names.")),
		mcp.WithString("state", mcp.Description("Comma-separated state names.")),
		mcp.WithString("group_by", mcp.Description("Comma-separated grouping dimensions (period, category, maker, state).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of groups returned.")),
	), h.handleGetSummary)

	// --- 4. Tool: get_trends ---
	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Compute monthly trend statistics: totals, average, overall growth and volatility."),
		mcp.WithString("from", mcp.Description("Start period in YYYY-MM form (inclusive).")),
		mcp.WithString("to", mcp.Description("End period in YYYY-MM form (inclusive).")),
		mcp.WithString("category", mcp.Description("Comma-separated vehicle categories (2W, 3W, 4W).")),
		mcp.WithString("maker", mcp.Description("Comma-separated manufacturer names.")),
		mcp.WithString("state", mcp.Description("Comma-separated state names.")),
	), h.handleGetTrends)

	return s
}

// StartMCPServer starts the VahanLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
