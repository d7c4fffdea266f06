package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/korvik/resfind-mcp/resolve"
	"github.com/korvik/resfind-mcp/track"
)

// ChangedArgs defines the input parameters for the resfind_changed tool.
type ChangedArgs struct {
	Path string `json:"path" jsonschema:"Resource path as returned by resfind_resolve (e.g. foo/bar)"`
}

// ChangedHandler holds the dependencies for the changed tool.
type ChangedHandler struct {
	Resolver *resolve.Resolver
	Ledger   *track.Ledger
	Logger   *slog.Logger
}

// Handle processes a resfind_changed request.
func (h *ChangedHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ChangedArgs) (*mcp.CallToolResult, any, error) {
	if args.Path == "" {
		h.Logger.Warn("resfind_changed called with empty path")
		return errorResult("Error: path parameter is required"), nil, nil
	}

	file, ok := h.Resolver.Locate(args.Path)
	if !ok {
		h.Logger.Info("resfind_changed resource not found", "path", args.Path)
		return errorResult(fmt.Sprintf("No such resource: %s", args.Path)), nil, nil
	}

	changed, err := h.Ledger.Changed(file)
	if err != nil {
		h.Logger.Error("resfind_changed failed", "path", args.Path, "error", err)
		return errorResult(fmt.Sprintf("Stat error: %v", err)), nil, nil
	}

	h.Logger.Info("resfind_changed", "path", args.Path, "changed", changed)

	if changed {
		return textResult(fmt.Sprintf("%s: changed since last load", args.Path)), nil, nil
	}
	return textResult(fmt.Sprintf("%s: unchanged since last load", args.Path)), nil, nil
}
