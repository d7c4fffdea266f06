// Package resolve maps logical resource names to files under a project
// root. A resource is a file carrying the recognized source extension; its
// name is the extension-stripped slash path relative to the query base.
//
// One naming convention is special-cased: a file whose extension-stripped
// name equals the name of its containing directory is an "idempotent
// object" and is addressed by that directory path instead of its own file
// name. Every other file in such a directory is a helper and cannot be
// resolved directly.
//
// Each call recomputes everything from the live file tree. There is no
// index and no cache: the tree can change between calls, and stale answers
// are unacceptable for dependency tracking.
package resolve

import (
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/korvik/resfind-mcp/pattern"
)

// DefaultExt is the recognized source extension when none is configured.
const DefaultExt = ".res"

// Options configures a Resolver.
type Options struct {
	Ext     string       // recognized source extension, DefaultExt when empty
	Skipper Skipper      // optional enumeration filter; nil scans everything
	Logger  *slog.Logger // optional; discarded when nil
}

// Resolver resolves search queries against the file tree below root. It
// holds no mutable state and is safe for concurrent use.
type Resolver struct {
	root   string
	ext    string
	skip   Skipper
	logger *slog.Logger
}

// New creates a Resolver rooted at the given project directory.
func New(root string, opts Options) *Resolver {
	ext := opts.Ext
	if ext == "" {
		ext = DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{root: root, ext: ext, skip: opts.Skipper, logger: logger}
}

// Root returns the project root directory.
func (r *Resolver) Root() string { return r.root }

// Ext returns the recognized source extension, with leading dot.
func (r *Resolver) Ext() string { return r.ext }

// candidateKind distinguishes plain resources from idempotent-directory
// aliases. Carrying the kind through filtering and sorting keeps the merge
// order and the no-deduplication behavior explicit.
type candidateKind int

const (
	plainCandidate candidateKind = iota
	idempotentCandidate
)

type candidate struct {
	kind candidateKind
	name string    // resource name; directory path for idempotent objects ("" for the base itself)
	file FileEntry // defining file, used for mtime ordering
}

// Find resolves a query to an ordered list of resource paths, each joined
// with the query base. No-match is not an error: the list is simply empty.
//
// Exact mode is an existence check over file names and returns at most one
// result. Partial and wildcard modes match the compiled pattern against
// plain resource names and idempotent directory names independently, then
// concatenate the two result sets without deduplication. An empty search in
// a pattern mode lists every resolvable resource under base.
func (r *Resolver) Find(q Query) ([]string, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	base := normalizeBase(q.Base)

	files, err := r.enumerate(base)
	if err != nil {
		return nil, err
	}
	cls := classify(files, r.anchorName(base), r.ext)

	if q.Method == pattern.Exact {
		result := r.findExact(q.Search, base, files, cls)
		r.logger.Debug("resolve", "search", q.Search, "method", q.Method, "base", base, "results", len(result))
		return result, nil
	}

	plain, idem := r.candidates(files, cls)
	matched := make([]candidate, 0, len(plain)+len(idem))
	if q.Search == "" {
		// No pattern at all: every candidate passes.
		matched = append(append(matched, plain...), idem...)
	} else {
		m := pattern.Compile(q.Search, q.Method, r.ext)
		for _, c := range plain {
			if m.Match(c.name) {
				matched = append(matched, c)
			}
		}
		for _, c := range idem {
			if m.Match(c.name) {
				matched = append(matched, c)
			}
		}
	}

	if q.ByMtime && len(matched) > 0 {
		// Stable: ties keep their merge order.
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].file.ModTime.After(matched[j].file.ModTime)
		})
	}

	paths := make([]string, 0, len(matched))
	for _, c := range matched {
		paths = append(paths, joinBase(base, c.name))
	}
	r.logger.Debug("resolve", "search", q.Search, "method", q.Method, "base", base, "results", len(paths))
	return paths, nil
}

// List enumerates every resolvable resource under base, optionally filtered
// by a doublestar glob over the joined resource paths. An invalid glob
// fails with ErrInvalidArgument before any filesystem access.
func (r *Resolver) List(base, glob string, byMtime bool) ([]string, error) {
	glob = strings.ReplaceAll(glob, "\\", "/")
	if glob != "" && !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("%w: invalid glob pattern %q", ErrInvalidArgument, glob)
	}

	all, err := r.Find(Query{Method: pattern.Wildcard, Base: base, ByMtime: byMtime})
	if err != nil || glob == "" {
		return all, err
	}
	var out []string
	for _, p := range all {
		if ok, _ := doublestar.Match(glob, p); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Locate returns the absolute path of the file that defines the given
// resource path, preferring the idempotent form dir/name/name.ext over the
// plain form dir/name.ext. The second return is false when neither exists.
func (r *Resolver) Locate(resourcePath string) (string, bool) {
	rel := normalizeBase(resourcePath)

	leaf := path.Base(rel)
	if rel == "" {
		leaf = filepath.Base(r.root)
	}
	idempotent := filepath.Join(r.root, filepath.FromSlash(rel), leaf+r.ext)
	if _, ok := statFile(idempotent); ok {
		return idempotent, true
	}
	if rel == "" {
		return "", false
	}
	plain := filepath.Join(r.root, filepath.FromSlash(rel)+r.ext)
	if _, ok := statFile(plain); ok {
		return plain, true
	}
	return "", false
}

// ModTime returns the last-modified timestamp of the file defining the
// given resource path.
func (r *Resolver) ModTime(resourcePath string) (time.Time, error) {
	file, ok := r.Locate(resourcePath)
	if !ok {
		return time.Time{}, &FilesystemError{Op: "stat", Path: resourcePath, Err: fmt.Errorf("no such resource")}
	}
	info, ok := statFile(file)
	if !ok {
		return time.Time{}, &FilesystemError{Op: "stat", Path: file, Err: fmt.Errorf("vanished during lookup")}
	}
	return info.ModTime(), nil
}

// findExact performs the existence-check form of resolution: the search is
// compared against extension-stripped file paths on a segment-suffix basis,
// mirroring a **/<search><ext> lookup. Idempotent directory aliases are not
// searched as such, but an idempotent object remains reachable through its
// own file name and resolves to its directory path. Helpers are already
// excluded, so a helper name never resolves.
func (r *Resolver) findExact(search, base string, files []FileEntry, cls classification) []string {
	if search == "" {
		return nil
	}
	want := strings.ToLower(normalizeBase(search))
	for _, f := range files {
		if cls.helpers[f.Rel] {
			continue
		}
		name := strings.ToLower(resourceName(f.Rel, r.ext))
		if name != want && !strings.HasSuffix(name, "/"+want) {
			continue
		}
		return []string{joinBase(base, r.nameOf(f, cls))}
	}
	return nil
}

// nameOf returns the matched identity of a file: its owning directory path
// when it is an idempotent object, its extension-stripped path otherwise.
func (r *Resolver) nameOf(f FileEntry, cls classification) string {
	dir := owningDir(f.Rel)
	if cls.definers[dir] == f.Rel {
		if dir == currentDir {
			return ""
		}
		return dir
	}
	return resourceName(f.Rel, r.ext)
}

// candidates splits the working file set into the plain and idempotent
// candidate lists, both in enumeration order. Helpers are dropped; each
// idempotent object is represented once, by its directory path.
func (r *Resolver) candidates(files []FileEntry, cls classification) (plain, idem []candidate) {
	for _, f := range files {
		if cls.helpers[f.Rel] {
			continue
		}
		dir := owningDir(f.Rel)
		if cls.definers[dir] == f.Rel {
			name := dir
			if name == currentDir {
				name = ""
			}
			idem = append(idem, candidate{kind: idempotentCandidate, name: name, file: f})
			continue
		}
		plain = append(plain, candidate{kind: plainCandidate, name: resourceName(f.Rel, r.ext), file: f})
	}
	return plain, idem
}

// anchorName is the directory name that a file directly under the scan base
// must carry to count as idempotent: the final segment of base, or of the
// project root when base is empty.
func (r *Resolver) anchorName(base string) string {
	if base == "" {
		return filepath.Base(r.root)
	}
	return path.Base(base)
}
