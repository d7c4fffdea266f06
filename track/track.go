// Package track remembers the stat identity of resources that have been
// loaded, so callers can ask whether a resource changed since its last
// load. File contents are never read; modification time plus size is the
// change signal.
package track

import (
	"os"
	"sync"
	"time"
)

// Stamp is the identity of a resource file at mark time.
type Stamp struct {
	ModTime time.Time
	Size    int64
}

// Ledger maps resource file paths to the stamp taken when the resource was
// last loaded. Safe for concurrent use.
type Ledger struct {
	mu     sync.RWMutex
	stamps map[string]Stamp
	dirty  map[string]bool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		stamps: make(map[string]Stamp),
		dirty:  make(map[string]bool),
	}
}

// Mark records the current stat identity of path, clearing any pending
// invalidation.
func (l *Ledger) Mark(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.stamps[path] = Stamp{ModTime: info.ModTime(), Size: info.Size()}
	delete(l.dirty, path)
	return nil
}

// Invalidate flags a path as changed without touching the filesystem.
// Used by the watcher event loop.
func (l *Ledger) Invalidate(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.stamps[path]; ok {
		l.dirty[path] = true
	}
}

// Changed reports whether path differs from its marked identity. A path
// that was never marked reports true: a resource never loaded is always
// considered stale. A path whose file vanished reports true as well.
func (l *Ledger) Changed(path string) (bool, error) {
	l.mu.RLock()
	stamp, marked := l.stamps[path]
	dirty := l.dirty[path]
	l.mu.RUnlock()

	if !marked || dirty {
		return true, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return !info.ModTime().Equal(stamp.ModTime) || info.Size() != stamp.Size, nil
}

// Forget drops a path from the ledger.
func (l *Ledger) Forget(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.stamps, path)
	delete(l.dirty, path)
}

// Count returns the number of marked resources.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.stamps)
}

// Paths returns a snapshot of every marked path, in no particular order.
func (l *Ledger) Paths() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	paths := make([]string, 0, len(l.stamps))
	for p := range l.stamps {
		paths = append(paths, p)
	}
	return paths
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stamps = make(map[string]Stamp)
	l.dirty = make(map[string]bool)
}
