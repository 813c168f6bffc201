package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huangsam/pepalyzer/core"
	"github.com/huangsam/pepalyzer/internal/contract"
	"github.com/huangsam/pepalyzer/internal/outwriter"
	"github.com/huangsam/pepalyzer/schema"
)

// toolHandler carries the base configuration that tool calls override
// per request.
type toolHandler struct {
	baseCfg *contract.Config
}

// resolveConfig clones the base config and applies per-request overrides.
func (h *toolHandler) resolveConfig(ctx context.Context, req mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	if repoPath := req.GetString("repo_path", ""); repoPath != "" {
		root, err := contract.NewLocalGitClient().GetRepoRoot(ctx, repoPath)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve repo_path '%s': %w", repoPath, err)
		}
		cfg.RepoPath = root
	}

	if since := req.GetString("since", ""); since != "" {
		start, err := contract.ParseTimeBound(since, time.Now())
		if err != nil {
			return nil, fmt.Errorf("invalid since value: %w", err)
		}
		cfg.StartTime = start
	}

	if order := req.GetString("order", ""); order != "" {
		mode := schema.OrderMode(order)
		if _, ok := schema.ValidOrderModes[mode]; !ok {
			return nil, fmt.Errorf("invalid order mode '%s'. must be number or activity", order)
		}
		cfg.Order = mode
	}

	if limit := req.GetInt("limit", 0); limit != 0 {
		if limit < 0 || limit > contract.MaxResultLimit {
			return nil, fmt.Errorf("limit must be between 0 and %d", contract.MaxResultLimit)
		}
		cfg.ResultLimit = limit
	}

	return cfg, nil
}

// handleGetPepReport returns the full per-PEP activity report as JSON.
func (h *toolHandler) handleGetPepReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.resolveConfig(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.WithMetadata = true
	cfg.WithSignals = true

	ctx = core.WithSuppressHeader(ctx)
	activities, signals := core.GetPepReportResults(ctx, cfg, contract.NewLocalGitClient(), contract.NewLocalFileReader())

	rows := outwriter.BuildReportRows(activities, signals)
	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot serialize report: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// handleGetPepSignals returns only the detected signal set as JSON.
func (h *toolHandler) handleGetPepSignals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.resolveConfig(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.WithSignals = true

	ctx = core.WithSuppressHeader(ctx)
	_, signals := core.GetPepReportResults(ctx, cfg, contract.NewLocalGitClient(), contract.NewLocalFileReader())

	if signals == nil {
		signals = []schema.PepSignal{}
	}
	payload, err := json.MarshalIndent(signals, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot serialize signals: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
