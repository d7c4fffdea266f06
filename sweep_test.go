package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/korvik/resfind-mcp/track"
)

func Test_SweepOnce_DropsVanishedFiles(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.res")
	gone := filepath.Join(dir, "gone.res")
	for _, p := range []string{keep, gone} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	ledger := track.NewLedger()
	if err := ledger.Mark(keep); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Mark(gone); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}

	if removed := sweepOnce(ledger); removed != 1 {
		t.Errorf("expected 1 removed entry, got %d", removed)
	}
	if ledger.Count() != 1 {
		t.Errorf("expected 1 tracked entry to remain, got %d", ledger.Count())
	}
}

func Test_SweepOnce_AllPresentIsNoop(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.res")
	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ledger := track.NewLedger()
	if err := ledger.Mark(p); err != nil {
		t.Fatal(err)
	}

	if removed := sweepOnce(ledger); removed != 0 {
		t.Errorf("expected no removals, got %d", removed)
	}
}
