package resolve

import (
	"fmt"
	"strings"

	"github.com/korvik/resfind-mcp/pattern"
)

// Query describes a single resolution request.
type Query struct {
	Search  string         // the resource name, or fragment of one, to look for
	Method  pattern.Method // matching discipline
	Base    string         // slash path relative to the resolver root; "" means the root itself
	ByMtime bool           // order results most-recently-modified first
}

// validate checks Method and Base. It touches no filesystem state, so an
// invalid query fails before any directory is opened.
func (q Query) validate() error {
	if !q.Method.Valid() {
		return fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, string(q.Method))
	}
	base := normalizeBase(q.Base)
	if strings.ContainsRune(base, 0) {
		return fmt.Errorf("%w: base contains NUL byte", ErrInvalidArgument)
	}
	if strings.HasPrefix(q.Base, "/") || strings.HasPrefix(q.Base, "\\") {
		return fmt.Errorf("%w: base %q must be relative", ErrInvalidArgument, q.Base)
	}
	for _, seg := range strings.Split(base, "/") {
		if seg == ".." {
			return fmt.Errorf("%w: base %q escapes the root", ErrInvalidArgument, q.Base)
		}
	}
	return nil
}

// normalizeBase applies the single best-effort separator pass: backslashes
// become slashes and redundant leading/trailing slashes are trimmed.
func normalizeBase(base string) string {
	base = strings.ReplaceAll(base, "\\", "/")
	return strings.Trim(base, "/")
}
