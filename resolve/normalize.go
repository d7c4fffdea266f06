package resolve

import (
	"path"
	"strings"

	"github.com/korvik/resfind-mcp/pattern"
)

// currentDir is the owning-directory sentinel for files that sit directly
// under the scan base with no intermediate directory.
const currentDir = "."

// resourceName derives the normalized resource name of a file entry:
// slash-separated relative path with the recognized extension stripped.
func resourceName(rel, ext string) string {
	return pattern.TrimExt(rel, ext)
}

// owningDir returns the directory that owns a file entry. Files directly
// under the scan base are owned by the base itself, reported as ".".
func owningDir(rel string) string {
	return path.Dir(rel)
}

// hasExt reports whether a file name carries the recognized extension,
// case-insensitively. A bare extension with nothing in front does not count.
func hasExt(name, ext string) bool {
	return len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext)
}

// joinBase joins a resource name with the query base using the canonical
// separator, collapsing any doubled-slash artifacts. An empty name denotes
// the root resource of the base itself.
func joinBase(base, name string) string {
	return path.Join(base, name)
}
