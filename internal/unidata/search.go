package unidata

import (
	"bytes"
	"strings"
)

// maxQueryLen bounds accepted search strings. Longer queries report
// not-found rather than failing.
const maxQueryLen = 255

// Searcher scans catalog names for a substring, remembering the last
// explicit query so it can be repeated in either direction. Queries are
// upper-cased before matching: official names are upper-case, so
// folding toward the dataset is the only normalization that can match.
type Searcher struct {
	catalog *Catalog
	last    string
}

// NewSearcher returns a searcher over c with empty query memory.
func NewSearcher(c *Catalog) *Searcher {
	return &Searcher{catalog: c}
}

// Find returns the index of the next entry whose name contains query,
// scanning circularly from from+dir (dir is +1 or -1) and wrapping past
// either end. Every entry is visited at most once. An empty query
// repeats the remembered one. The boolean is false — and from is
// returned unchanged — when no entry matches, the query is oversized,
// or there is nothing to repeat. Only explicit queries update the
// memory; repeats never do.
func (s *Searcher) Find(query string, from, dir int) (int, bool) {
	explicit := query != ""
	switch {
	case explicit:
		if len(query) > maxQueryLen {
			return from, false
		}
		query = strings.ToUpper(query)
	case s.last != "":
		query = s.last
	default:
		return from, false
	}

	n := s.catalog.Len()
	needle := []byte(query)
	pos := from
	for {
		pos += dir
		if pos >= n {
			pos = 0
		} else if pos < 0 {
			pos = n - 1
		}
		if bytes.Contains(s.catalog.nameBytes(pos), needle) {
			if explicit {
				s.last = query
			}
			return pos, true
		}
		if pos == from {
			return from, false
		}
	}
}

// HasMemory reports whether a previous query is available for repeats.
func (s *Searcher) HasMemory() bool { return s.last != "" }
