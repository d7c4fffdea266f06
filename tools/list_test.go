package tools

import (
	"context"
	"strings"
	"testing"
)

func Test_ListHandler_GlobFilter(t *testing.T) {
	resolver, _ := newTestProject(t, "api/users.res", "api/orders.res", "jobs/cleanup.res")
	h := &ListHandler{Resolver: resolver, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ListArgs{Glob: "api/*"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}

	text := resultText(t, result)
	if !strings.Contains(text, "api/users") || !strings.Contains(text, "api/orders") {
		t.Errorf("expected api resources in output, got:\n%s", text)
	}
	if strings.Contains(text, "jobs/cleanup") {
		t.Errorf("expected jobs/cleanup to be filtered out, got:\n%s", text)
	}
}

func Test_ListHandler_InvalidGlob(t *testing.T) {
	resolver, _ := newTestProject(t, "a.res")
	h := &ListHandler{Resolver: resolver, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ListArgs{Glob: "[invalid"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for invalid glob")
	}
}

func Test_ListHandler_NoGlobListsEverything(t *testing.T) {
	resolver, _ := newTestProject(t, "a.res", "b/c.res")
	h := &ListHandler{Resolver: resolver, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ListArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Found 2 resources") {
		t.Errorf("expected 2 resources, got:\n%s", text)
	}
}
