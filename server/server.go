package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/korvik/resfind-mcp/tools"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	resolveHandler *tools.ResolveHandler,
	listHandler *tools.ListHandler,
	changedHandler *tools.ChangedHandler,
	statusHandler *tools.StatusHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "resfind-mcp",
			Version: "0.3.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server resolves logical resource names to files in the project tree.

Naming conventions the resolver understands:
- A resource is a file with the configured extension; its name is the extension-stripped path relative to the search base.
- A file named after its own directory (foo/bar/bar.<ext>) is that directory's canonical resource and is addressed as foo/bar. Other files in such a directory are private helpers and never resolve directly.

Use resfind_resolve for lookups (exact, partial, or fuzzy wildcard matching), resfind_list for glob-filtered inventories, and resfind_changed to ask whether a previously loaded resource is stale. Results are recomputed from the live tree on every call, so they are never out of date.`,
		},
	)

	// Register resfind_resolve tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "resfind_resolve",
		Description: `Resolve a resource name to its file paths under the project root.

Methods:
  - "exact": existence check on the resource name; returns at most one result
  - "partial": case-insensitive contiguous substring match
  - "wildcard" (default): fuzzy match; search characters must appear in order, starting at the first character of the candidate

Set byMtime to order results newest-first; set mark to record resolved resources as loaded for change tracking.`,
	}, resolveHandler.Handle)

	// Register resfind_list tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "resfind_list",
		Description: `List every resolvable resource under a base directory.

Optional doublestar glob over the resource paths:
  - "**/migrations/*" - everything inside any migrations directory
  - "api/*" - direct children of api/`,
	}, listHandler.Handle)

	// Register resfind_changed tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "resfind_changed",
		Description: "Report whether a resource's file changed since it was last resolved with mark=true. Unmarked resources always report changed.",
	}, changedHandler.Handle)

	// Register resfind_status tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "resfind_status",
		Description: "Show server status: project root, resource extension, tracked resource count, memory usage, and uptime.",
	}, statusHandler.Handle)

	return mcpServer
}
