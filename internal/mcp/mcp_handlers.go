package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/votetab/core"
	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleGetDifficultyFrequencies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("dataset_path", ""); p != "" {
		cfg.DatasetPath = p
	}
	if raw := request.GetString("min_level", ""); raw != "" {
		level, err := schema.ParseDifficulty(strings.ToLower(raw))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid min_level: %v", err)), nil
		}
		cfg.MinLevel = &level
	}

	result, err := core.GetFrequencyResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("frequency computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleTabulateColumn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("dataset_path", ""); p != "" {
		cfg.DatasetPath = p
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	name := schema.ColumnName(strings.ToLower(request.GetString("column", "")))
	col, ok := schema.ColumnByName(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown column '%s'", name)), nil
	}
	cfg.Column = col

	result, err := core.GetTabulationResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("tabulation failed: %v", err)), nil
	}
	if len(result) > cfg.ResultLimit {
		result = result[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCrossTab(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("dataset_path", ""); p != "" {
		cfg.DatasetPath = p
	}
	if raw := request.GetString("min_level", ""); raw != "" {
		level, err := schema.ParseDifficulty(strings.ToLower(raw))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid min_level: %v", err)), nil
		}
		cfg.MinLevel = &level
	}

	result, err := core.GetCrossTabResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("crosstab failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetNonvoterReasons(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("dataset_path", ""); p != "" {
		cfg.DatasetPath = p
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, err := core.GetReasonsResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reason tabulation failed: %v", err)), nil
	}
	if len(result) > cfg.ResultLimit {
		result = result[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
