package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FormatResources formats an ordered resource path list as human-readable
// text. Order is preserved; an empty path denotes the root resource.
func FormatResources(paths []string) string {
	if len(paths) == 0 {
		return "No resources matched."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d resources:\n\n", len(paths)))
	for _, p := range paths {
		if p == "" {
			p = "(root)"
		}
		b.WriteString("  ")
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}

// textResult wraps plain text in a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps plain text in an IsError tool result.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// formatSize converts bytes to a human-readable string.
func formatSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 60 {
		return fmt.Sprintf("%ds", totalSeconds)
	}
	totalMinutes := totalSeconds / 60
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm%ds", totalMinutes, totalSeconds%60)
	}
	return fmt.Sprintf("%dh%dm", totalMinutes/60, totalMinutes%60)
}
