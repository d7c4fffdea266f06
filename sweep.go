package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/korvik/resfind-mcp/track"
)

// defaultSweepSeconds is the interval between ledger consistency sweeps.
const defaultSweepSeconds = 300

// runLedgerSweep periodically verifies that every tracked resource file
// still exists, dropping entries whose files are gone. The watcher catches
// most removals live; the sweep covers events lost while a directory was
// not yet watched. Runs until stop is closed.
func runLedgerSweep(intervalSeconds int, ledger *track.Ledger, logger *slog.Logger, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Duration(intervalSeconds) * time.Second)
	defer ticker.Stop()

	logger.Info("ledger sweep started", "intervalSeconds", intervalSeconds)

	for {
		select {
		case <-stop:
			logger.Info("ledger sweep stopped")
			return
		case <-ticker.C:
			removed := sweepOnce(ledger)
			if removed > 0 {
				logger.Info("ledger sweep complete", "removed", removed)
			} else {
				logger.Debug("ledger sweep complete, all tracked files present")
			}
		}
	}
}

// sweepOnce drops ledger entries whose files no longer exist and returns
// how many were removed.
func sweepOnce(ledger *track.Ledger) int {
	removed := 0
	for _, p := range ledger.Paths() {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			ledger.Forget(p)
			removed++
		}
	}
	return removed
}
