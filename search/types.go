package search

import (
	"cmp"
	"slices"
	"strings"
)

// Request pairs a pattern with the path it is searched in
type Request struct {
	Pattern string
	Path    string
}

// Child returns the request for a directory entry, keeping the pattern
func (r Request) Child(path string) Request {
	return Request{Pattern: r.Pattern, Path: path}
}

// Match represents a single line that contains the pattern
type Match struct {
	File   string // path as built during traversal
	Line   int    // 0-based
	Text   string // line with every occurrence highlighted
	Source string // line as read, without the line ending
}

// Raw returns the matched line as it appears in the file
func (m Match) Raw() string {
	return m.Source
}

// Column returns the 1-based byte column of the first occurrence of pattern
func (m Match) Column(pattern string) int {
	idx := strings.Index(m.Raw(), pattern)
	if idx < 0 {
		return 1
	}
	return idx + 1
}

// ResultSet holds matches in traversal order
type ResultSet []Match

// Files returns the number of distinct files in the set
func (rs ResultSet) Files() int {
	seen := make(map[string]struct{})
	for _, m := range rs {
		seen[m.File] = struct{}{}
	}
	return len(seen)
}

// Sorted returns a copy ordered by file and line.
// The printer never uses it; listing order is whatever the filesystem reports.
func (rs ResultSet) Sorted() ResultSet {
	out := slices.Clone(rs)
	slices.SortStableFunc(out, func(a, b Match) int {
		if c := cmp.Compare(a.File, b.File); c != 0 {
			return c
		}
		return cmp.Compare(a.Line, b.Line)
	})
	return out
}
