package resolve

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileEntry is one enumerated resource file. Entries are produced fresh on
// every call and owned by that call alone; nothing is cached across calls.
type FileEntry struct {
	Rel     string    // slash path relative to root/base
	ModTime time.Time // captured at enumeration time
}

// Skipper filters directories and files out of enumeration. Implementations
// must be safe for concurrent use. A nil Skipper enumerates everything.
type Skipper interface {
	SkipDir(absPath string) bool
	SkipFile(absPath string) bool
}

// enumerate walks root/base and collects every file carrying the recognized
// extension, in lexical (stable) order. Walk and stat failures surface as
// *FilesystemError.
func (r *Resolver) enumerate(base string) ([]FileEntry, error) {
	scanRoot := filepath.Join(r.root, filepath.FromSlash(base))

	var files []FileEntry
	err := filepath.WalkDir(scanRoot, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &FilesystemError{Op: "walk", Path: p, Err: walkErr}
		}
		if d.IsDir() {
			if p != scanRoot && r.skip != nil && r.skip.SkipDir(p) {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasExt(d.Name(), r.ext) {
			return nil
		}
		if r.skip != nil && r.skip.SkipFile(p) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return &FilesystemError{Op: "stat", Path: p, Err: err}
		}
		rel, err := filepath.Rel(scanRoot, p)
		if err != nil {
			return &FilesystemError{Op: "rel", Path: p, Err: err}
		}
		files = append(files, FileEntry{Rel: filepath.ToSlash(rel), ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		var fsErr *FilesystemError
		if errors.As(err, &fsErr) {
			return nil, fsErr
		}
		return nil, &FilesystemError{Op: "walk", Path: scanRoot, Err: err}
	}
	return files, nil
}

// statFile re-checks a single candidate file. Used by Locate.
func statFile(absPath string) (os.FileInfo, bool) {
	info, err := os.Stat(absPath)
	if err != nil || info.IsDir() {
		return nil, false
	}
	return info, true
}
