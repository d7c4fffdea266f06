// Package ignore decides which paths are skipped while scanning a project
// tree for resources. Rules come from a default directory list, the
// project's .gitignore, an optional .resignore, and custom patterns.
package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	gitignore "github.com/denormal/go-gitignore"
)

// Rules answers skip queries for the resolver and the watcher.
// Thread-safe: Reload takes the write lock, the Skip methods take the read
// lock.
type Rules struct {
	mu     sync.RWMutex
	root   string
	git    gitignore.GitIgnore
	local  gitignore.GitIgnore // .resignore, same syntax as .gitignore
	custom []string
}

// New loads ignore rules for the given project root. Custom patterns use
// filepath.Match syntax and are tried against both the relative path and
// the base name.
func New(root string, custom []string) *Rules {
	r := &Rules{root: root, custom: custom}
	r.git = loadIgnoreFile(filepath.Join(root, ".gitignore"), root)
	r.local = loadIgnoreFile(filepath.Join(root, ".resignore"), root)
	return r
}

// SkipDir reports whether a directory should be pruned from traversal.
func (r *Rules) SkipDir(absPath string) bool {
	if defaultSkipDirs[filepath.Base(absPath)] {
		return true
	}
	return r.skip(absPath, true)
}

// SkipFile reports whether a single file should be excluded.
func (r *Rules) SkipFile(absPath string) bool {
	return r.skip(absPath, false)
}

func (r *Rules) skip(absPath string, isDir bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rel, err := filepath.Rel(r.root, absPath)
	if err != nil {
		rel = absPath
	}
	rel = filepath.ToSlash(rel)

	// Relative() matches without requiring the path to still exist on disk.
	if r.git != nil {
		if m := r.git.Relative(rel, isDir); m != nil && m.Ignore() {
			return true
		}
	}
	if r.local != nil {
		if m := r.local.Relative(rel, isDir); m != nil && m.Ignore() {
			return true
		}
	}

	base := filepath.Base(absPath)
	for _, p := range r.custom {
		if ok, err := filepath.Match(p, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(p, base); err == nil && ok {
			return true
		}
	}

	// A default-skipped directory anywhere on the relative path excludes
	// everything beneath it.
	for _, seg := range strings.Split(rel, "/") {
		if defaultSkipDirs[seg] {
			return true
		}
	}
	return false
}

// Reload re-reads .gitignore and .resignore from disk. Called by the event
// loop when either file changes.
func (r *Rules) Reload() {
	git := loadIgnoreFile(filepath.Join(r.root, ".gitignore"), r.root)
	local := loadIgnoreFile(filepath.Join(r.root, ".resignore"), r.root)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.git = git
	r.local = local
}

// loadIgnoreFile parses an ignore file into a matcher, or returns nil when
// the file is absent. The reader form keeps the handle lifetime explicit.
func loadIgnoreFile(filePath, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()
	return gitignore.New(f, baseDir, nil)
}
