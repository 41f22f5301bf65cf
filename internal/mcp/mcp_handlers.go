package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/orbweave/orbweave/core"
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleComputePositions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	date, err := contract.ParseDateInput(request.GetString("date", ""), time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", err)), nil
	}
	cfg.Date = date

	positions, err := core.GetPositionResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("position computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(positions, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAnalyzeAspects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.ChartFile = request.GetString("chart_file", "")
	cfg.IncludeMinor = request.GetBool("minor", cfg.IncludeMinor)
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, err := core.GetAspectResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aspect analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDetectPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.ChartFile = request.GetString("chart_file", "")
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, err := core.GetPatternResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pattern detection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handlePredictTiming(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.ChartFile = request.GetString("chart_file", "")

	from, err := contract.ParseDateInput(request.GetString("from", ""), time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid from date: %v", err)), nil
	}
	cfg.From = from

	if l := request.GetInt("lookahead", 0); l > 0 {
		cfg.Lookahead = l
	}
	if c := request.GetString("category", ""); c != "" {
		category := schema.EventCategory(c)
		if _, ok := schema.ValidEventCategories[category]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid category '%s'", c)), nil
		}
		cfg.Category = category
	}
	if f := request.GetString("fallback", ""); f != "" {
		fallback := schema.FallbackPolicy(f)
		if _, ok := schema.ValidFallbackPolicies[fallback]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid fallback '%s'", f)), nil
		}
		cfg.Fallback = fallback
	}

	forecast, _, err := core.GetForecastResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("timing forecast failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(forecast, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
