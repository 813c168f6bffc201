// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/huangsam/pepalyzer/internal/contract"
)

// NewMCPServer initializes and configures the pepalyzer MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"PEP Activity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: get_pep_report ---
	s.AddTool(mcp.NewTool("get_pep_report",
		mcp.WithDescription("Aggregate recent git activity per PEP with header metadata and editorial signals."),
		mcp.WithString("repo_path", mcp.Description("Path to the PEP Git repository (defaults to the configured path).")),
		mcp.WithString("since", mcp.Description("Lower time bound, e.g. '30 days', '2 weeks ago', '2024-01-01'.")),
		mcp.WithString("order", mcp.Description("Ordering: 'number' (ascending PEP number) or 'activity' (descending commit count)."), mcp.Enum("number", "activity")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of PEPs returned.")),
	), h.handleGetPepReport)

	// --- 2. Tool: get_pep_signals ---
	s.AddTool(mcp.NewTool("get_pep_signals",
		mcp.WithDescription("Detect editorial signals (deprecation, normative language) in recently changed PEPs."),
		mcp.WithString("repo_path", mcp.Description("Path to the PEP Git repository.")),
		mcp.WithString("since", mcp.Description("Lower time bound, e.g. '30 days', '2 weeks ago', '2024-01-01'.")),
	), h.handleGetPepSignals)

	return s
}

// StartMCPServer starts the pepalyzer MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
