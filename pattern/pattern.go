// Package pattern compiles search strings into case-insensitive matching
// predicates. Three disciplines are supported: exact equality, contiguous
// substring containment, and anchored subsequence ("fuzzy") matching.
package pattern

import "strings"

// Method selects the matching discipline for a search.
type Method string

const (
	Exact    Method = "exact"    // full-string equality
	Partial  Method = "partial"  // contiguous substring containment
	Wildcard Method = "wildcard" // ordered non-contiguous subsequence, anchored at the first character
)

// Valid reports whether m is one of the recognized methods.
func (m Method) Valid() bool {
	switch m {
	case Exact, Partial, Wildcard:
		return true
	}
	return false
}

// Matcher is a compiled search predicate. An empty search compiled for
// Partial or Wildcard matches every candidate; for Exact it matches only
// the empty candidate.
type Matcher struct {
	method Method
	search string // lowercased; extension-stripped for Partial and Wildcard
}

// Compile builds a Matcher for the given search string and method. For
// Partial and Wildcard a trailing recognized extension is stripped from the
// search before compilation; for Exact the search is compared as given.
func Compile(search string, method Method, ext string) Matcher {
	if method != Exact {
		search = TrimExt(search, ext)
	}
	return Matcher{method: method, search: strings.ToLower(search)}
}

// Match reports whether the candidate satisfies the compiled search. The
// candidate is treated as a single opaque string: separators and dots are
// literal characters, never metacharacters.
func (m Matcher) Match(candidate string) bool {
	candidate = strings.ToLower(candidate)
	switch m.method {
	case Exact:
		return candidate == m.search
	case Partial:
		return strings.Contains(candidate, m.search)
	case Wildcard:
		return subsequence(m.search, candidate)
	}
	return false
}

// TrimExt removes a trailing recognized extension from s, case-insensitively.
// The extension is only stripped when something remains in front of it, so a
// bare ".res" style name is returned unchanged.
func TrimExt(s, ext string) string {
	if ext == "" || len(s) <= len(ext) {
		return s
	}
	if strings.EqualFold(s[len(s)-len(ext):], ext) {
		return s[:len(s)-len(ext)]
	}
	return s
}

// subsequence reports whether every rune of search occurs in candidate in
// the same relative order, with the first rune of search aligned to the
// first rune of candidate. Linear two-pointer scan over pre-lowercased
// inputs; no intermediate pattern string is built, so punctuation in either
// input needs no escaping.
func subsequence(search, candidate string) bool {
	if search == "" {
		return true
	}
	want := []rune(search)
	i := 0
	for pos, r := range candidate {
		if pos == 0 && r != want[0] {
			return false
		}
		if r == want[i] {
			i++
			if i == len(want) {
				return true
			}
		}
	}
	return false
}
