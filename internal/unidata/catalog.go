// Package unidata holds the immutable Unicode dataset the browser
// navigates: the sorted codepoint index with its shared name store, and
// the named block table with a lazily computed emptiness mask. Nothing
// in this package mutates after construction except the one-shot block
// classification.
package unidata

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxRune is the highest valid Unicode codepoint.
const MaxRune rune = 0x10FFFF

// Char is the external representation of one catalog entry. It is the
// seam a prepared dataset plugs into; Build assembles the standard one.
type Char struct {
	Rune      rune
	Name      string
	Combining bool
}

type entry struct {
	r          rune
	nameOffset uint32
	nameLen    uint16
	combining  bool
}

// Catalog is the sorted codepoint index. Entries are strictly
// increasing by rune with no duplicates; all names live in one shared
// byte buffer addressed by (offset, length).
type Catalog struct {
	entries []entry
	names   []byte
	version string
}

// New builds a catalog from prepared characters. The input must be
// sorted ascending by rune, free of duplicates, and non-empty.
func New(version string, chars []Char) *Catalog {
	size := 0
	for _, ch := range chars {
		size += len(ch.Name)
	}
	c := &Catalog{
		entries: make([]entry, 0, len(chars)),
		names:   make([]byte, 0, size),
		version: version,
	}
	for _, ch := range chars {
		c.entries = append(c.entries, entry{
			r:          ch.Rune,
			nameOffset: uint32(len(c.names)),
			nameLen:    uint16(len(ch.Name)),
			combining:  ch.Combining,
		})
		c.names = append(c.names, ch.Name...)
	}
	return c
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Rune returns the codepoint of entry i.
func (c *Catalog) Rune(i int) rune { return c.entries[i].r }

// Combining reports whether entry i is a combining mark.
func (c *Catalog) Combining(i int) bool { return c.entries[i].combining }

// Name returns the official name of entry i.
func (c *Catalog) Name(i int) string { return string(c.nameBytes(i)) }

func (c *Catalog) nameBytes(i int) []byte {
	e := c.entries[i]
	return c.names[e.nameOffset : e.nameOffset+uint32(e.nameLen)]
}

// Version returns the dataset version label.
func (c *Catalog) Version() string { return c.version }

// LookupNearest finds the entry for r, or the numerically closest entry
// when r has none. Equidistant neighbours resolve to the larger
// codepoint; out-of-range values land on the boundary entries.
func (c *Catalog) LookupNearest(r rune) int {
	top, bottom := 0, len(c.entries)-1
	for bottom-top > 1 {
		mid := (top + bottom) / 2
		switch {
		case c.entries[mid].r < r:
			top = mid
		case c.entries[mid].r > r:
			bottom = mid
		default:
			return mid
		}
	}
	if r-c.entries[top].r < c.entries[bottom].r-r {
		return top
	}
	return bottom
}

// OffsetByDelta returns the index of the entry nearest to the codepoint
// delta away from entry i. Jumps past either end of the catalog snap to
// the closest populated codepoint instead of failing.
func (c *Catalog) OffsetByDelta(i int, delta rune) int {
	return c.LookupNearest(c.entries[i].r + delta)
}

// ParseCodepoint interprets s as a hexadecimal codepoint with an
// optional U+ prefix. Values beyond MaxRune are rejected.
func ParseCodepoint(s string) (rune, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q", s)
	}
	if v > uint64(MaxRune) {
		return 0, fmt.Errorf("codepoint %q is beyond U+10FFFF", s)
	}
	return rune(v), nil
}
