package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vahanlens/vahanlens/core"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleGetGrowth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid filter: %v", err)), nil
	}
	groupBy, err := groupByFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid group_by: %v", err)), nil
	}

	records, err := h.loadRecords(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}
	points, err := core.Aggregate(records, filter, groupBy)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	var result any
	switch request.GetString("mode", "yoy") {
	case "qoq":
		growth, err := core.QuarterOverQuarter(points)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("growth failed: %v", err)), nil
		}
		result = schema.QuarterGrowthResult{GroupBy: groupBy, Points: growth}
	default:
		growth, err := core.YearOverYear(points)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("growth failed: %v", err)), nil
		}
		result = schema.GrowthResult{GroupBy: groupBy, Points: growth}
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetMarketShare(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid filter: %v", err)), nil
	}

	records, err := h.loadRecords(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}
	groupBy := []schema.Dimension{schema.DimPeriod, schema.DimCategory, schema.DimMaker}
	points, err := core.Aggregate(records, filter, groupBy)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}
	shares, err := core.MarketShare(points)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("market share failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(schema.ShareResult{Points: shares}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid filter: %v", err)), nil
	}
	groupBy, err := groupByFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid group_by: %v", err)), nil
	}

	records, err := h.loadRecords(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}
	result, err := core.Summary(records, filter, groupBy)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 && len(result.Points) > l {
		result.Points = result.Points[:l]
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid filter: %v", err)), nil
	}

	records, err := h.loadRecords(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}
	stats, err := core.TrendStats(records, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trends failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// loadRecords pulls the filtered slice from the managed store.
func (h *toolHandler) loadRecords(ctx context.Context, filter schema.FilterSpec) ([]schema.RegistrationRecord, error) {
	store := h.mgr.GetRecordStore()
	if store == nil {
		return nil, errors.New("registration store is not initialized")
	}
	return store.QueryRecords(ctx, filter)
}

// filterFromRequest builds a FilterSpec from the tool's string parameters.
func filterFromRequest(request mcp.CallToolRequest) (schema.FilterSpec, error) {
	var filter schema.FilterSpec

	if v := request.GetString("from", ""); v != "" {
		from, err := schema.ParsePeriod(v)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if v := request.GetString("to", ""); v != "" {
		to, err := schema.ParsePeriod(v)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}

	for _, raw := range splitParam(request.GetString("category", "")) {
		cat := schema.Category(strings.ToUpper(raw))
		if _, ok := schema.ValidCategories[cat]; !ok {
			return filter, fmt.Errorf("unknown category %q", raw)
		}
		filter.Categories = append(filter.Categories, cat)
	}
	filter.Makers = splitParam(request.GetString("maker", ""))
	filter.States = splitParam(request.GetString("state", ""))

	if err := filter.Validate(); err != nil {
		return filter, err
	}
	return filter, nil
}

// groupByFromRequest parses the group_by parameter, guaranteeing a period axis.
func groupByFromRequest(request mcp.CallToolRequest) ([]schema.Dimension, error) {
	raw := splitParam(request.GetString("group_by", ""))
	if len(raw) == 0 {
		return []schema.Dimension{schema.DimPeriod, schema.DimCategory}, nil
	}
	dims := make([]schema.Dimension, 0, len(raw))
	hasPeriod := false
	for _, v := range raw {
		dim := schema.Dimension(strings.ToLower(v))
		if _, ok := schema.ValidDimensions[dim]; !ok {
			return nil, fmt.Errorf("unknown dimension %q", v)
		}
		if dim == schema.DimPeriod {
			hasPeriod = true
		}
		dims = append(dims, dim)
	}
	if !hasPeriod {
		dims = append([]schema.Dimension{schema.DimPeriod}, dims...)
	}
	return dims, nil
}

// splitParam splits a comma-separated parameter, dropping empty entries.
func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
