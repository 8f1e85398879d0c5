package tui

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// layout captures the table geometry for one terminal size and column
// request. The bottom row is reserved for the status line, so only
// height-1 rows carry table entries.
type layout struct {
	columns     int
	columnWidth int
	visibleRows int
	tableSize   int
}

// computeLayout resolves the requested column count against the current
// terminal size. Columns narrower than the minimum are not allowed: the
// count clamps down to what fits, and floors at one column no matter
// how cramped the terminal gets.
func computeLayout(width, height, columns int) layout {
	maxColumns := (width - 1) / (minColumnWidth + 1)
	if columns > maxColumns {
		columns = maxColumns
	}
	if columns < 1 {
		columns = 1
	}
	rows := height - 1
	if rows < 1 {
		rows = 1
	}
	return layout{
		columns:     columns,
		columnWidth: width / columns,
		visibleRows: rows,
		tableSize:   rows * columns,
	}
}

// clampLeading forces the topmost displayed index into [0, n-tableSize].
// A catalog smaller than one page collapses to zero.
func clampLeading(leading, n, tableSize int) int {
	if leading > n-tableSize {
		leading = n - tableSize
	}
	if leading < 0 {
		leading = 0
	}
	return leading
}

// glyphCells reports how many terminal cells the glyph for r occupies.
// Combining marks report zero on their own; while accent rendering is
// active they are promoted to one cell so the accent base has room.
func glyphCells(r rune, combining, accented bool) int {
	width := runewidth.RuneWidth(r)
	if width < 0 {
		width = 0
	}
	if combining && accented && width == 0 {
		width = 1
	}
	return width
}

// hexLabel formats a codepoint as the 5-cell table label. Codepoints
// above U+FFFF grow past four digits and shed the leading space.
func hexLabel(r rune) string {
	s := fmt.Sprintf(" %04X", r)
	return s[len(s)-5:]
}

// truncateName fits a character name into budget cells. A name that
// fits is returned whole. With more than six cells to spare the name is
// split around an ellipsis, half the budget to the prefix and the rest
// to the suffix; tighter budgets show the ellipsis and whatever suffix
// remains. Names are ASCII, so bytes and cells coincide.
func truncateName(name string, budget int) string {
	if budget >= len(name) {
		return name
	}
	if budget > 6 {
		head := budget / 2
		tail := budget - head - 1
		return name[:head] + ellipsis + name[len(name)-tail:]
	}
	if budget > 1 {
		return ellipsis + name[len(name)-budget+1:]
	}
	return ellipsis
}
