// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/orbweave/orbweave/internal/contract"
)

// NewMCPServer initializes and configures the Orbweave MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Orbweave Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: compute_positions ---
	s.AddTool(mcp.NewTool("compute_positions",
		mcp.WithDescription("Compute ecliptic longitudes and daily motion for all supported bodies at a given date."),
		mcp.WithString("date", mcp.Description("Date to compute positions for (YYYY-MM-DD or RFC3339). Defaults to now.")),
	), h.handleComputePositions)

	// --- 2. Tool: analyze_aspects ---
	s.AddTool(mcp.NewTool("analyze_aspects",
		mcp.WithDescription("Detect angular aspects between bodies of a natal chart file."),
		mcp.WithString("chart_file", mcp.Description("Path to the chart YAML file."), mcp.Required()),
		mcp.WithBoolean("minor", mcp.Description("Include minor aspects (quincunx, semisextile).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleAnalyzeAspects)

	// --- 3. Tool: detect_patterns ---
	s.AddTool(mcp.NewTool("detect_patterns",
		mcp.WithDescription("Detect multi-body configurations (grand trines, T-squares, stelliums) in a natal chart file."),
		mcp.WithString("chart_file", mcp.Description("Path to the chart YAML file."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleDetectPatterns)

	// --- 4. Tool: predict_timing ---
	s.AddTool(mcp.NewTool("predict_timing",
		mcp.WithDescription("Forecast favorable timing windows for a natal chart over a future date range."),
		mcp.WithString("chart_file", mcp.Description("Path to the chart YAML file."), mcp.Required()),
		mcp.WithString("from", mcp.Description("Start date of the forecast range (YYYY-MM-DD). Defaults to now.")),
		mcp.WithNumber("lookahead", mcp.Description("Number of days to scan ahead.")),
		mcp.WithString("category", mcp.Description("Event category to weight rules for."), mcp.Enum("career", "relationship", "finance", "health", "general")),
		mcp.WithString("fallback", mcp.Description("Fallback policy for unsupported bodies (skip, propagate)."), mcp.Enum("skip", "propagate")),
	), h.handlePredictTiming)

	return s
}

// StartMCPServer starts the Orbweave MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
