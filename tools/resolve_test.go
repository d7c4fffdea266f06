package tools

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/korvik/resfind-mcp/resolve"
	"github.com/korvik/resfind-mcp/track"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestProject builds a resource tree and returns a resolver plus ledger
// over it.
func newTestProject(t *testing.T, paths ...string) (*resolve.Resolver, *track.Ledger) {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		abs := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte("content"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return resolve.New(root, resolve.Options{}), track.NewLedger()
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected content in result")
	}
	return result.Content[0].(*mcp.TextContent).Text
}

func Test_ResolveHandler_WildcardDefault(t *testing.T) {
	resolver, ledger := newTestProject(t, "dir/some_resource.res")
	h := &ResolveHandler{Resolver: resolver, Ledger: ledger, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ResolveArgs{Search: "dsmsrc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "dir/some_resource") {
		t.Errorf("expected dir/some_resource in output, got:\n%s", resultText(t, result))
	}
}

func Test_ResolveHandler_InvalidMethod(t *testing.T) {
	resolver, ledger := newTestProject(t, "a.res")
	h := &ResolveHandler{Resolver: resolver, Ledger: ledger, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ResolveArgs{Search: "a", Method: "fuzzy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for unknown method")
	}
	if !strings.Contains(resultText(t, result), "Invalid request") {
		t.Errorf("expected invalid-request message, got: %s", resultText(t, result))
	}
}

func Test_ResolveHandler_NoMatchIsNotAnError(t *testing.T) {
	resolver, ledger := newTestProject(t, "a.res")
	h := &ResolveHandler{Resolver: resolver, Ledger: ledger, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ResolveArgs{Search: "zzz", Method: "partial"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("no-match must not be an error result")
	}
	if !strings.Contains(resultText(t, result), "No resources matched") {
		t.Errorf("expected empty-result message, got: %s", resultText(t, result))
	}
}

func Test_ResolveHandler_MarkRecordsResolvedResources(t *testing.T) {
	resolver, ledger := newTestProject(t, "foo/bar/bar.res")
	h := &ResolveHandler{Resolver: resolver, Ledger: ledger, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ResolveArgs{Search: "bar", Method: "exact", Mark: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}
	if ledger.Count() != 1 {
		t.Errorf("expected 1 tracked resource, got %d", ledger.Count())
	}
}

func Test_ResolveHandler_HelperNotResolvable(t *testing.T) {
	resolver, ledger := newTestProject(t, "foo/bar/bar.res", "foo/bar/helper.res")
	h := &ResolveHandler{Resolver: resolver, Ledger: ledger, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ResolveArgs{Search: "helper", Method: "partial"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "No resources matched") {
		t.Errorf("expected helper to be unresolvable, got: %s", resultText(t, result))
	}
}
