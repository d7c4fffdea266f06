package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/korvik/resfind-mcp/resolve"
)

// ListArgs defines the input parameters for the resfind_list tool.
type ListArgs struct {
	Base    string `json:"base,omitempty" jsonschema:"Subdirectory to list, relative to the project root"`
	Glob    string `json:"glob,omitempty" jsonschema:"Optional doublestar glob over resource paths (e.g. **/migrations/*)"`
	ByMtime bool   `json:"byMtime,omitempty" jsonschema:"If true order results most-recently-modified first"`
}

// ListHandler holds the dependencies for the list tool.
type ListHandler struct {
	Resolver *resolve.Resolver
	Logger   *slog.Logger
}

// Handle processes a resfind_list request.
func (h *ListHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ListArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	paths, err := h.Resolver.List(args.Base, args.Glob, args.ByMtime)
	if err != nil {
		h.Logger.Error("resfind_list failed", "base", args.Base, "glob", args.Glob, "error", err)
		return errorResult(resolveErrorText(err)), nil, nil
	}

	h.Logger.Info("resfind_list",
		"base", args.Base,
		"glob", args.Glob,
		"results", len(paths),
		"elapsed", time.Since(start),
	)

	return textResult(FormatResources(paths)), nil, nil
}
