package resolve

import (
	"path"

	"github.com/korvik/resfind-mcp/pattern"
)

// classification is the outcome of the idempotent scan over an enumerated
// file set. It must be computed before any pattern matching: the helper
// exclusion set depends on it, and an unfiltered helper could otherwise
// match a query and surface as a spurious resource.
type classification struct {
	definers map[string]string // owning dir -> rel path of the idempotent object that claims it
	helpers  map[string]bool   // rel path -> excluded as helper
}

// classify finds idempotent objects and the helper files they shadow.
//
// A file is an idempotent object when its extension-stripped name equals the
// name of its immediately enclosing directory (dir/name/name.ext). anchor is
// the final segment of the scan base (or of the root when base is empty) and
// covers the degenerate case of a self-named file sitting directly under the
// base. A file is a helper when it shares its owning directory with an
// idempotent object without being that object itself. Directories with no
// idempotent object keep all of their files.
func classify(files []FileEntry, anchor, ext string) classification {
	c := classification{
		definers: make(map[string]string),
		helpers:  make(map[string]bool),
	}

	for _, f := range files {
		leaf := pattern.TrimExt(path.Base(f.Rel), ext)
		dir := owningDir(f.Rel)
		if dir == currentDir {
			if leaf == anchor {
				c.definers[dir] = f.Rel
			}
			continue
		}
		if leaf == path.Base(dir) {
			c.definers[dir] = f.Rel
		}
	}

	if len(c.definers) == 0 {
		return c
	}
	for _, f := range files {
		definer, ok := c.definers[owningDir(f.Rel)]
		if ok && f.Rel != definer {
			c.helpers[f.Rel] = true
		}
	}
	return c
}
