// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/votetab/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Votetab MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Votetab Survey Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_difficulty_frequencies ---
	s.AddTool(mcp.NewTool("get_difficulty_frequencies",
		mcp.WithDescription("Compute party-normalized voting difficulty frequencies from a survey dataset."),
		mcp.WithString("dataset_path", mcp.Description("Path to the survey dataset (defaults to the configured dataset if not specified).")),
		mcp.WithString("min_level", mcp.Description("Keep only respondents strictly above this difficulty level (not, little, moderate, very, extreme)."), mcp.Enum("not", "little", "moderate", "very", "extreme")),
	), h.handleGetDifficultyFrequencies)

	// --- 2. Tool: tabulate_column ---
	s.AddTool(mcp.NewTool("tabulate_column",
		mcp.WithDescription("Tabulate value counts and shares for a categorical survey column."),
		mcp.WithString("column", mcp.Description("Column to tabulate (party, voting_difficulty, presumed_reason)."), mcp.Required(), mcp.Enum("party", "voting_difficulty", "presumed_reason")),
		mcp.WithString("dataset_path", mcp.Description("Path to the survey dataset.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of values returned.")),
	), h.handleTabulateColumn)

	// --- 3. Tool: get_crosstab ---
	s.AddTool(mcp.NewTool("get_crosstab",
		mcp.WithDescription("Produce the raw party-by-difficulty contingency table."),
		mcp.WithString("dataset_path", mcp.Description("Path to the survey dataset.")),
		mcp.WithString("min_level", mcp.Description("Keep only respondents strictly above this difficulty level."), mcp.Enum("not", "little", "moderate", "very", "extreme")),
	), h.handleGetCrossTab)

	// --- 4. Tool: get_nonvoter_reasons ---
	s.AddTool(mcp.NewTool("get_nonvoter_reasons",
		mcp.WithDescription("Tabulate the presumed blocking reasons among nonvoting respondents."),
		mcp.WithString("dataset_path", mcp.Description("Path to the survey dataset.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of reasons returned.")),
	), h.handleGetNonvoterReasons)

	return s
}

// StartMCPServer starts the Votetab MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
