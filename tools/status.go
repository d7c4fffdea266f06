package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/korvik/resfind-mcp/resolve"
	"github.com/korvik/resfind-mcp/track"
)

// StatusArgs defines the input parameters for the resfind_status tool (none required).
type StatusArgs struct{}

// StatusHandler holds the dependencies for the status tool.
type StatusHandler struct {
	Resolver  *resolve.Resolver
	Ledger    *track.Ledger
	StartTime time.Time
	Logger    *slog.Logger
}

// Handle processes a resfind_status request.
func (h *StatusHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args StatusArgs) (*mcp.CallToolResult, any, error) {
	uptime := time.Since(h.StartTime)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	h.Logger.Info("resfind_status",
		"tracked", h.Ledger.Count(),
		"memory", memStats.Alloc,
		"uptime", uptime,
	)

	var b strings.Builder
	b.WriteString("=== resfind-mcp Status ===\n\n")
	b.WriteString(fmt.Sprintf("Project root: %s\n", h.Resolver.Root()))
	b.WriteString(fmt.Sprintf("Resource extension: %s\n", h.Resolver.Ext()))
	b.WriteString(fmt.Sprintf("Uptime: %s\n", formatDuration(uptime)))
	b.WriteString(fmt.Sprintf("Tracked resources: %d\n", h.Ledger.Count()))
	b.WriteString(fmt.Sprintf("Memory usage: %s (heap: %s)\n",
		formatSize(int64(memStats.Alloc)),
		formatSize(int64(memStats.HeapAlloc)),
	))

	return textResult(b.String()), nil, nil
}
