package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/korvik/resfind-mcp/pattern"
	"github.com/korvik/resfind-mcp/resolve"
	"github.com/korvik/resfind-mcp/track"
)

// ResolveArgs defines the input parameters for the resfind_resolve tool.
type ResolveArgs struct {
	Search  string `json:"search,omitempty" jsonschema:"Resource name or fragment to look for. Empty lists everything under base"`
	Method  string `json:"method,omitempty" jsonschema:"Matching method: exact, partial or wildcard (default wildcard)"`
	Base    string `json:"base,omitempty" jsonschema:"Subdirectory to search under, relative to the project root"`
	ByMtime bool   `json:"byMtime,omitempty" jsonschema:"If true order results most-recently-modified first"`
	Mark    bool   `json:"mark,omitempty" jsonschema:"If true record each resolved resource as loaded for change tracking"`
}

// ResolveHandler holds the dependencies for the resolve tool.
type ResolveHandler struct {
	Resolver *resolve.Resolver
	Ledger   *track.Ledger
	Logger   *slog.Logger
}

// Handle processes a resfind_resolve request.
func (h *ResolveHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ResolveArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	method := pattern.Method(args.Method)
	if args.Method == "" {
		method = pattern.Wildcard
	}

	paths, err := h.Resolver.Find(resolve.Query{
		Search:  args.Search,
		Method:  method,
		Base:    args.Base,
		ByMtime: args.ByMtime,
	})
	if err != nil {
		h.Logger.Error("resfind_resolve failed", "search", args.Search, "method", args.Method, "error", err)
		return errorResult(resolveErrorText(err)), nil, nil
	}

	if args.Mark && h.Ledger != nil {
		for _, p := range paths {
			file, ok := h.Resolver.Locate(p)
			if !ok {
				continue
			}
			if err := h.Ledger.Mark(file); err != nil {
				h.Logger.Warn("failed to mark resource", "resource", p, "error", err)
			}
		}
	}

	h.Logger.Info("resfind_resolve",
		"search", args.Search,
		"method", string(method),
		"base", args.Base,
		"results", len(paths),
		"elapsed", time.Since(start),
	)

	return textResult(FormatResources(paths)), nil, nil
}

// resolveErrorText maps resolver errors to user-facing messages.
func resolveErrorText(err error) string {
	var fsErr *resolve.FilesystemError
	switch {
	case errors.Is(err, resolve.ErrInvalidArgument):
		return fmt.Sprintf("Invalid request: %v", err)
	case errors.As(err, &fsErr):
		return fmt.Sprintf("Filesystem error: %v", err)
	default:
		return fmt.Sprintf("Resolve error: %v", err)
	}
}
